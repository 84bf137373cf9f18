package querykey

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDailyHierarchy(t *testing.T) {
	all := Daily.All()
	day1 := Daily.ByDate("2024-01-01")
	day2 := Daily.ByDate("2024-01-02")
	sub := Daily.Sub("2024-01-01", SubCalories)
	rng := Daily.Range("2024-01-01", "2024-01-07")

	assert.True(t, day1.Extends(all))
	assert.True(t, sub.Extends(all))
	assert.True(t, sub.Extends(day1))
	assert.True(t, rng.Extends(all))

	assert.False(t, day1.Extends(day2))
	assert.False(t, sub.Extends(day2))
	assert.False(t, all.Extends(day1))
}

func TestKeyDeterministic(t *testing.T) {
	assert.Equal(t, Daily.Sub("2024-01-01", SubMITs), Daily.Sub("2024-01-01", SubMITs))
	assert.Equal(t, Subscriptions.ByCategory("c1").String(), Subscriptions.ByCategory("c1").String())
	assert.True(t, Subscriptions.ByCategory("c1").Equal(New("subscriptions", "category", "c1")))
}

func TestKeyExtends(t *testing.T) {
	tests := []struct {
		name   string
		key    Key
		prefix Key
		want   bool
	}{
		{"self", Weekly.ByWeek("2024-01-01"), Weekly.ByWeek("2024-01-01"), true},
		{"empty prefix", Profile.Current(), Key{}, true},
		{"resource", Subscriptions.Totals(), Subscriptions.All(), true},
		{"category", Subscriptions.ByCategory("c1"), Subscriptions.All(), true},
		{"other category", Subscriptions.ByCategory("c1"), Subscriptions.ByCategory("c2"), false},
		{"other resource", Injections.ByDate("2024-01-01"), Daily.All(), false},
		{"longer prefix", Lookups.All(), Lookups.Compounds(), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.key.Extends(tt.prefix))
		})
	}
}

func TestKeyString(t *testing.T) {
	assert.Equal(t, "daily/2024-01-01/calories", Daily.Sub("2024-01-01", SubCalories).String())
	assert.Equal(t, "subscriptions/category/a\\/b", Subscriptions.ByCategory("a/b").String())
	assert.NotEqual(t, New("a/b").String(), New("a", "b").String())
}

func TestAppendDoesNotAlias(t *testing.T) {
	base := make(Key, 1, 4)
	base[0] = "daily"
	a := base.Append("x")
	b := base.Append("y")

	assert.Equal(t, Key{"daily", "x"}, a)
	assert.Equal(t, Key{"daily", "y"}, b)
}
