package flow

import (
	"testing"

	"github.com/admbot/intakebot/internal/models"
	"github.com/admbot/intakebot/internal/validate"
)

func TestEveryFlowEndsInCommit(t *testing.T) {
	for ft, f := range Flows {
		if len(f.Steps) == 0 {
			t.Fatalf("flow %s has no steps", ft)
		}
		last := f.Steps[len(f.Steps)-1]
		if last.Success != models.StateCommit {
			t.Errorf("flow %s last step %s does not end in commit", ft, last.State)
		}
		for i, step := range f.Steps[:len(f.Steps)-1] {
			if step.Success != f.Steps[i+1].State {
				t.Errorf("flow %s step %s advances to %s, expected %s", ft, step.State, step.Success, f.Steps[i+1].State)
			}
		}
		if f.Entry != f.Steps[0].State {
			t.Errorf("flow %s entry %s does not match first step %s", ft, f.Entry, f.Steps[0].State)
		}
	}
}

func TestTerminalFieldsAreCollected(t *testing.T) {
	for ft, f := range Flows {
		collected := map[models.DataKey]bool{models.DataKeyCategory: true}
		for _, step := range f.Steps {
			collected[step.Field] = true
		}
		for _, key := range f.Terminal.FieldOrder {
			if !collected[key] {
				t.Errorf("flow %s commits field %s that no step collects", ft, key)
			}
		}
	}
}

func TestStepForPrefersActiveFlow(t *testing.T) {
	f, step, ok := StepFor(models.StatePartnerName, models.FlowTypePartnerPartner)
	if !ok {
		t.Fatal("expected a step for partner name state")
	}
	if f.Type != models.FlowTypePartnerPartner {
		t.Errorf("expected partner flow preferred, got %s", f.Type)
	}
	if step.Field != models.DataKeyName {
		t.Errorf("expected name field, got %s", step.Field)
	}

	if _, _, ok := StepFor(models.StateMenu, ""); ok {
		t.Error("expected no step for menu state")
	}
}

func TestPartnerProofStepRequiresMedia(t *testing.T) {
	_, step, ok := StepFor(models.StatePartnerProof, models.FlowTypePartnerGive)
	if !ok {
		t.Fatal("expected a step for payment proof state")
	}
	if step.Kind != validate.KindMedia {
		t.Errorf("expected media validation, got %s", step.Kind)
	}
	if step.Success != models.StateCommit {
		t.Errorf("expected proof step to commit, got %s", step.Success)
	}
}

func TestCategoryByPayload(t *testing.T) {
	c, ok := CategoryByPayload("give_tithe")
	if !ok || c.LabelKey != "give_tithe" {
		t.Errorf("expected tithe category, got %+v ok=%v", c, ok)
	}
	c, ok = CategoryByPayload("partner_angels")
	if !ok || c.LabelKey != "partner_angels" {
		t.Errorf("expected angels category, got %+v ok=%v", c, ok)
	}
	if _, ok := CategoryByPayload("bogus"); ok {
		t.Error("expected no category for unknown payload")
	}
}
