package dodge

import "testing"

func TestAgePopups(t *testing.T) {
	popups := []Popup{
		{Text: "+12", Y: 100, TTL: GrazePopupTTL},
		{Text: "SPRINT", Y: 100, TTL: DashPopupTTL},
	}

	popups = agePopups(popups, 0.2)
	if len(popups) != 2 {
		t.Fatalf("len = %d, expected both alive", len(popups))
	}
	if popups[0].Y != 91 {
		t.Errorf("Y = %v, expected drift to 91", popups[0].Y)
	}

	popups = agePopups(popups, 0.2)
	if len(popups) != 1 || popups[0].Text != "+12" {
		t.Errorf("popups = %+v, expected only the graze popup left", popups)
	}

	popups = agePopups(popups, 0.5)
	if len(popups) != 0 {
		t.Errorf("len = %d, expected all expired", len(popups))
	}
}

func TestPopupFade(t *testing.T) {
	p := Popup{TTL: 0.8, Age: 0.2}
	if got := p.Fade(); got != 0.75 {
		t.Errorf("Fade() = %v, expected 0.75", got)
	}
	if (Popup{}).Fade() != 0 {
		t.Error("zero TTL should be fully faded")
	}
}

func TestGrazePopupText(t *testing.T) {
	p := grazePopup(Obstacle{X: 10, Y: 20, W: 40, H: 40}, 14.64)
	if p.Text != "+15" {
		t.Errorf("Text = %q, expected +15", p.Text)
	}
	if p.X != 30 || p.Y != 40 {
		t.Errorf("position = (%v, %v), expected obstacle center", p.X, p.Y)
	}
}
