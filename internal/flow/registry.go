// Package flow implements the dialog engine and the declarative flow
// definitions it runs: member sign-up, prayer request, course enrollment and
// the giving/partnership flows with their nested category menus.
package flow

import (
	"github.com/admbot/intakebot/internal/models"
	"github.com/admbot/intakebot/internal/validate"
)

// Menu payload constants. Payloads are stable identifiers carried by menu
// options, independent of the localized labels shown to the participant.
const (
	PayloadMember      = "member"
	PayloadPrayer      = "prayer"
	PayloadSchool      = "school"
	PayloadMasterClass = "masterclass"
	PayloadPartner     = "partner"
	PayloadAdminStats  = "admin_stats"

	PayloadShowGiveOptions    = "show_give_options"
	PayloadShowPartnerOptions = "show_partner_options"
	PayloadBackToMenu         = "back_to_menu"
	PayloadBackToCategories   = "back_to_categories"
	PayloadContactAdmin       = "contact_admin"
)

// Step is one data-collection state inside a flow: the prompt shown on
// entry, the validation rule applied to the reply, the session field the
// accepted value lands in, and the state to advance to on success.
type Step struct {
	State     models.StateType
	Field     models.DataKey
	PromptKey string
	Kind      validate.Kind
	Success   models.StateType
}

// Terminal describes what happens when a flow's last step succeeds: the
// accumulated fields, in FieldOrder, are appended to Collection as one
// record, and SuccessKey is rendered back to the participant.
type Terminal struct {
	Collection models.Collection
	FieldOrder []models.DataKey
	SuccessKey string
}

// Flow is one complete multi-step dialog definition.
type Flow struct {
	Type      models.FlowType
	Entry     models.StateType
	IntroKeys []string // messages sent before the entry step's prompt
	Steps     []Step
	Terminal  Terminal
}

// Category is one entry of the giving or partnership sub-menus. The English
// label is what gets recorded as the partner record's category field.
type Category struct {
	Payload  string
	LabelKey string
}

// GiveCategories are the options under "Give Options".
var GiveCategories = []Category{
	{Payload: "give_tithe", LabelKey: "give_tithe"},
	{Payload: "give_offering", LabelKey: "give_offering"},
	{Payload: "give_seed", LabelKey: "give_seed"},
}

// PartnerCategories are the options under "Partner Options".
var PartnerCategories = []Category{
	{Payload: "partner_man_of_god", LabelKey: "partner_man_of_god"},
	{Payload: "partner_ministry", LabelKey: "partner_ministry"},
	{Payload: "partner_angels", LabelKey: "partner_angels"},
}

// CategoryByPayload returns the category definition for a sub-menu payload.
func CategoryByPayload(payload string) (Category, bool) {
	for _, c := range append(append([]Category{}, GiveCategories...), PartnerCategories...) {
		if c.Payload == payload {
			return c, true
		}
	}
	return Category{}, false
}

// partnerSteps is shared by the giving and partnership flows; they differ
// only in how the category field is chosen before the steps begin.
var partnerSteps = []Step{
	{State: models.StatePartnerName, Field: models.DataKeyName, PromptKey: "prompt_name", Kind: validate.KindFreeText, Success: models.StatePartnerPhone},
	{State: models.StatePartnerPhone, Field: models.DataKeyPhone, PromptKey: "prompt_phone", Kind: validate.KindPhone, Success: models.StatePartnerCountry},
	{State: models.StatePartnerCountry, Field: models.DataKeyCountry, PromptKey: "prompt_country", Kind: validate.KindCountry, Success: models.StatePartnerAmount},
	{State: models.StatePartnerAmount, Field: models.DataKeyAmount, PromptKey: "prompt_amount", Kind: validate.KindAmount, Success: models.StatePartnerProof},
	{State: models.StatePartnerProof, Field: models.DataKeyProofRef, PromptKey: "prompt_payment_proof", Kind: validate.KindMedia, Success: models.StateCommit},
}

var partnerTerminal = Terminal{
	Collection: models.CollectionPartners,
	FieldOrder: []models.DataKey{models.DataKeyCategory, models.DataKeyName, models.DataKeyPhone, models.DataKeyCountry, models.DataKeyAmount, models.DataKeyProofRef},
	SuccessKey: "partner_thankyou",
}

// Flows is the registry of every dialog definition, keyed by flow type.
var Flows = map[models.FlowType]Flow{
	models.FlowTypeMember: {
		Type:  models.FlowTypeMember,
		Entry: models.StateMemberName,
		Steps: []Step{
			{State: models.StateMemberName, Field: models.DataKeyName, PromptKey: "prompt_name", Kind: validate.KindFreeText, Success: models.StateMemberPhone},
			{State: models.StateMemberPhone, Field: models.DataKeyPhone, PromptKey: "prompt_phone", Kind: validate.KindPhone, Success: models.StateMemberCountry},
			{State: models.StateMemberCountry, Field: models.DataKeyCountry, PromptKey: "prompt_country", Kind: validate.KindCountry, Success: models.StateCommit},
		},
		Terminal: Terminal{
			Collection: models.CollectionMembers,
			FieldOrder: []models.DataKey{models.DataKeyName, models.DataKeyPhone, models.DataKeyCountry},
			SuccessKey: "member_signup_success",
		},
	},
	models.FlowTypePrayer: {
		Type:  models.FlowTypePrayer,
		Entry: models.StatePrayerName,
		Steps: []Step{
			{State: models.StatePrayerName, Field: models.DataKeyName, PromptKey: "prompt_name", Kind: validate.KindFreeText, Success: models.StatePrayerText},
			{State: models.StatePrayerText, Field: models.DataKeyRequest, PromptKey: "prompt_prayer", Kind: validate.KindFreeText, Success: models.StateCommit},
		},
		Terminal: Terminal{
			Collection: models.CollectionPrayers,
			FieldOrder: []models.DataKey{models.DataKeyName, models.DataKeyRequest},
			SuccessKey: "prayer_thankyou",
		},
	},
	models.FlowTypeSchool: {
		Type:      models.FlowTypeSchool,
		Entry:     models.StateSchoolName,
		IntroKeys: []string{"scripture_discipleship"},
		Steps: []Step{
			{State: models.StateSchoolName, Field: models.DataKeyName, PromptKey: "prompt_name", Kind: validate.KindFreeText, Success: models.StateSchoolPhone},
			{State: models.StateSchoolPhone, Field: models.DataKeyPhone, PromptKey: "prompt_phone", Kind: validate.KindPhone, Success: models.StateSchoolCountry},
			{State: models.StateSchoolCountry, Field: models.DataKeyCountry, PromptKey: "prompt_country", Kind: validate.KindCountry, Success: models.StateCommit},
		},
		Terminal: Terminal{
			Collection: models.CollectionSchool,
			FieldOrder: []models.DataKey{models.DataKeyName, models.DataKeyPhone, models.DataKeyCountry},
			SuccessKey: "school_signup_success",
		},
	},
	models.FlowTypeMasterClass: {
		Type:      models.FlowTypeMasterClass,
		Entry:     models.StateMasterName,
		IntroKeys: []string{"scripture_masterclass"},
		Steps: []Step{
			{State: models.StateMasterName, Field: models.DataKeyName, PromptKey: "prompt_name", Kind: validate.KindFreeText, Success: models.StateMasterPhone},
			{State: models.StateMasterPhone, Field: models.DataKeyPhone, PromptKey: "prompt_phone", Kind: validate.KindPhone, Success: models.StateMasterCountry},
			{State: models.StateMasterCountry, Field: models.DataKeyCountry, PromptKey: "prompt_country", Kind: validate.KindCountry, Success: models.StateCommit},
		},
		Terminal: Terminal{
			Collection: models.CollectionMasterClass,
			FieldOrder: []models.DataKey{models.DataKeyName, models.DataKeyPhone, models.DataKeyCountry},
			SuccessKey: "masterclass_signup_success",
		},
	},
	models.FlowTypePartnerGive: {
		Type:     models.FlowTypePartnerGive,
		Entry:    models.StatePartnerName,
		Steps:    partnerSteps,
		Terminal: partnerTerminal,
	},
	models.FlowTypePartnerPartner: {
		Type:     models.FlowTypePartnerPartner,
		Entry:    models.StatePartnerName,
		Steps:    partnerSteps,
		Terminal: partnerTerminal,
	},
}

type stepRef struct {
	flow models.FlowType
	idx  int
}

// stateIndex maps every step state to its flow and position. The partner
// flows share states, so the active flow on the session disambiguates.
var stateIndex = buildStateIndex()

func buildStateIndex() map[models.StateType][]stepRef {
	idx := make(map[models.StateType][]stepRef)
	for ft, f := range Flows {
		for i, st := range f.Steps {
			idx[st.State] = append(idx[st.State], stepRef{flow: ft, idx: i})
		}
	}
	return idx
}

// StepFor resolves the step definition for a session's current state,
// preferring the session's active flow when several flows share the state.
func StepFor(state models.StateType, active models.FlowType) (Flow, Step, bool) {
	refs, ok := stateIndex[state]
	if !ok || len(refs) == 0 {
		return Flow{}, Step{}, false
	}
	ref := refs[0]
	for _, r := range refs {
		if r.flow == active {
			ref = r
			break
		}
	}
	f := Flows[ref.flow]
	return f, f.Steps[ref.idx], true
}
