package timepicker

import "testing"

func TestObservable(t *testing.T) {
	t.Run("Get", func(t *testing.T) {
		obs := NewObservable("en")
		if obs.Get() != "en" {
			t.Errorf("expected 'en', got %q", obs.Get())
		}
	})

	t.Run("Subscribe", func(t *testing.T) {
		obs := NewObservable(1)
		var got []int
		obs.Subscribe(func(v int) { got = append(got, v) })

		obs.Set(2)
		obs.Set(2) // unchanged, no notification
		obs.Set(3)

		if len(got) != 2 || got[0] != 2 || got[1] != 3 {
			t.Errorf("expected [2 3], got %v", got)
		}
		if obs.Get() != 3 {
			t.Errorf("expected 3, got %d", obs.Get())
		}
	})

	t.Run("Unsubscribe", func(t *testing.T) {
		obs := NewObservable("a")
		calls := 0
		unsub := obs.Subscribe(func(string) { calls++ })
		other := 0
		obs.Subscribe(func(string) { other++ })

		obs.Set("b")
		unsub()
		unsub()
		obs.Set("c")

		if calls != 1 {
			t.Errorf("expected 1 call before unsubscribe, got %d", calls)
		}
		if other != 2 {
			t.Errorf("expected other listener to keep receiving, got %d", other)
		}
		if obs.Subscribers() != 1 {
			t.Errorf("expected 1 subscriber, got %d", obs.Subscribers())
		}
	})

	t.Run("SetFromListener", func(t *testing.T) {
		obs := NewObservable(0)
		obs.Subscribe(func(v int) {
			if v < 3 {
				obs.Set(v + 1)
			}
		})
		obs.Set(1)
		if obs.Get() != 3 {
			t.Errorf("expected 3, got %d", obs.Get())
		}
	})
}
