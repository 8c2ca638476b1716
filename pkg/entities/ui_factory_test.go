package entities

import (
	"testing"

	"github.com/decker502/roulette/pkg/components"
	"github.com/decker502/roulette/pkg/ecs"
)

func TestNewPanelButton(t *testing.T) {
	em := ecs.NewEntityManager()
	clicked := false
	id := NewPanelButton(em, 10, 20, 170, 80, "Spin", 36, func() { clicked = true })

	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok || pos.X != 10 || pos.Y != 20 {
		t.Fatalf("position = %+v, %v", pos, ok)
	}

	button, ok := ecs.GetComponent[*components.ButtonComponent](em, id)
	if !ok {
		t.Fatal("button component missing")
	}
	if button.Text != "Spin" || button.Width != 170 || button.Height != 80 || !button.Enabled {
		t.Errorf("button = %+v", button)
	}
	button.OnClick()
	if !clicked {
		t.Error("OnClick not wired")
	}

	if !ecs.HasComponent[*components.UIComponent](em, id) {
		t.Error("UIComponent marker missing")
	}
}

func TestNewSectorInputEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	var got string
	id := NewSectorInputEntity(em, 0, 0, 200, 70, 36, 8, func(s string) { got = s })

	input, ok := ecs.GetComponent[*components.TextInputComponent](em, id)
	if !ok {
		t.Fatal("text input component missing")
	}
	if input.Text != "8" || input.CursorPosition != 1 {
		t.Errorf("text = %q cursor %d", input.Text, input.CursorPosition)
	}
	if input.MaxLength != 2 || !input.DigitsOnly {
		t.Errorf("MaxLength = %d DigitsOnly = %v", input.MaxLength, input.DigitsOnly)
	}
	if input.Placeholder != "2-50" {
		t.Errorf("Placeholder = %q", input.Placeholder)
	}
	input.OnChange("12")
	if got != "12" {
		t.Error("OnChange not wired")
	}
}

func TestNewReadoutAndLabel(t *testing.T) {
	em := ecs.NewEntityManager()
	r := NewReadoutEntity(em, 100, 50, 96, 8)
	l := NewLabelEntity(em, 10, 10, "Sectors", 36)

	readout, ok := ecs.GetComponent[*components.ReadoutComponent](em, r)
	if !ok || readout.Value != 8 || readout.TextSize != 96 {
		t.Errorf("readout = %+v, %v", readout, ok)
	}
	label, ok := ecs.GetComponent[*components.LabelComponent](em, l)
	if !ok || label.Text != "Sectors" {
		t.Errorf("label = %+v, %v", label, ok)
	}
}
