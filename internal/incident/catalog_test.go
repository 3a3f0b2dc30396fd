package incident

import (
	"math/rand"
	"testing"
)

func TestMessage_AllCatalogServices(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for service, cat := range catalogs {
		if len(cat.normal) == 0 || len(cat.errors) == 0 {
			t.Fatalf("service %q has an empty catalog side", service)
		}
		for i := 0; i < 20; i++ {
			if msg := Message(r, service, false); msg == "" {
				t.Errorf("service %q produced empty normal message", service)
			}
			if msg := Message(r, service, true); msg == "" {
				t.Errorf("service %q produced empty error message", service)
			}
		}
	}
}

func TestMessage_UnknownServiceFallsBack(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	if msg := Message(r, "no-such-service", true); msg == "" {
		t.Error("expected fallback message for unknown service")
	}
}

func TestMessage_Reproducible(t *testing.T) {
	a := Message(rand.New(rand.NewSource(7)), "nginx", true)
	b := Message(rand.New(rand.NewSource(7)), "nginx", true)
	if a != b {
		t.Errorf("same seed produced %q and %q", a, b)
	}
}
