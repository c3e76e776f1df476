package bus

import "testing"

func TestSubscribePublish(t *testing.T) {
	b := New()

	var got []string
	b.Subscribe("task_created", func(s Signal) {
		got = append(got, s.Data["id"])
	})

	b.Publish(Signal{Name: "task_created", Data: map[string]string{"id": "t1"}})
	b.Publish(Signal{Name: "unrelated"})
	b.Publish(Signal{Name: "task_created", Data: map[string]string{"id": "t2"}})

	if len(got) != 2 || got[0] != "t1" || got[1] != "t2" {
		t.Errorf("received = %v, want [t1 t2]", got)
	}
}

func TestCancelStopsDelivery(t *testing.T) {
	b := New()

	count := 0
	cancel := b.Subscribe("tab_changed", func(Signal) { count++ })

	b.Publish(Signal{Name: "tab_changed"})
	cancel()
	cancel() // must be safe to call twice
	b.Publish(Signal{Name: "tab_changed"})

	if count != 1 {
		t.Errorf("deliveries = %d, want 1", count)
	}
}

func TestMultipleSubscribers(t *testing.T) {
	b := New()

	a, c := 0, 0
	b.Subscribe("resume", func(Signal) { a++ })
	b.Subscribe("resume", func(Signal) { c++ })

	b.Publish(Signal{Name: "resume"})

	if a != 1 || c != 1 {
		t.Errorf("deliveries = (%d, %d), want (1, 1)", a, c)
	}
}
