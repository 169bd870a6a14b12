package dial

import (
	"errors"
	"testing"
)

func TestStyles(t *testing.T) {
	got := Styles()
	want := []string{"classic", "minimal", "modern"}
	if len(got) != len(want) {
		t.Fatalf("Styles() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Styles()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestCreate(t *testing.T) {
	for _, style := range Styles() {
		t.Run(style, func(t *testing.T) {
			c, err := Create("10:09:30", style)
			if err != nil {
				t.Fatalf("Create(%q): %v", style, err)
			}
			if c.Width() != 400 || c.Height() != 400 {
				t.Errorf("size = %dx%d, want 400x400", c.Width(), c.Height())
			}
			if len(c.Elements()) == 0 {
				t.Error("preset produced no elements")
			}
			if _, err := c.Render(); err != nil {
				t.Errorf("Render: %v", err)
			}
		})
	}
}

func TestCreateUnknownStyle(t *testing.T) {
	_, err := Create("12:00:00", "steampunk")
	if err == nil {
		t.Fatal("unknown style accepted")
	}
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Errorf("error type = %T, want *ConfigError", err)
	}
}

func TestCreateBadTime(t *testing.T) {
	if _, err := Create("25:99:99", "classic"); err == nil {
		t.Error("malformed time accepted")
	}
}

func TestCreateInjectsTime(t *testing.T) {
	c, err := Create("3:15:30", "classic")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	for _, e := range c.Elements() {
		if e.Type() == "Hands" {
			if got := e.Properties()["time"]; got != "3:15:30" {
				t.Errorf("hands time = %v, want 3:15:30", got)
			}
			return
		}
	}
	t.Fatal("classic preset has no Hands element")
}

func TestCreateOptionsOverridePreset(t *testing.T) {
	c, err := Create("12:00:00", "minimal", WithSize(200, 100))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if c.Width() != 200 || c.Height() != 100 {
		t.Errorf("size = %dx%d, want 200x100", c.Width(), c.Height())
	}
}

func TestCreateClocksIndependent(t *testing.T) {
	a, err := Create("3:00:00", "classic")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	b, err := Create("9:00:00", "classic")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	timeOf := func(c *Clock) any {
		for _, e := range c.Elements() {
			if e.Type() == "Hands" {
				return e.Properties()["time"]
			}
		}
		return nil
	}
	if timeOf(a) != "3:00:00" || timeOf(b) != "9:00:00" {
		t.Errorf("preset clocks share state: %v, %v", timeOf(a), timeOf(b))
	}
}
