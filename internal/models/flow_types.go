// Package models defines flow type definitions to avoid circular imports.
package models

// FlowType identifies one complete multi-step data-collection dialog.
type FlowType string

// StateType identifies a named point in a flow's progression awaiting input.
type StateType string

// DataKey is a key under which a collected field value is stored.
type DataKey string

// Collection names a record-store target for completed flow records.
type Collection string

// Flow type constants.
const (
	FlowTypeMember         FlowType = "member"
	FlowTypePrayer         FlowType = "prayer"
	FlowTypeSchool         FlowType = "school"
	FlowTypeMasterClass    FlowType = "masterclass"
	FlowTypePartnerGive    FlowType = "partner_give"
	FlowTypePartnerPartner FlowType = "partner_partner"
)

// State constants. StateLanguageSelect is the entry state for a new session;
// StateMenu is the common re-entry hub after every commit, reset or back
// navigation. StateCommit is not a resting state: a step whose success state
// is StateCommit triggers the flow's terminal action instead of waiting for
// further input.
const (
	StateLanguageSelect StateType = "LANG_SELECT"
	StateMenu           StateType = "MENU"
	StateCommit         StateType = "COMMIT"

	StateMemberName    StateType = "MEMBER_NAME"
	StateMemberPhone   StateType = "MEMBER_PHONE"
	StateMemberCountry StateType = "MEMBER_COUNTRY"

	StatePrayerName StateType = "PRAYER_NAME"
	StatePrayerText StateType = "PRAYER_INPUT"

	StateSchoolName    StateType = "SCHOOL_NAME"
	StateSchoolPhone   StateType = "SCHOOL_PHONE"
	StateSchoolCountry StateType = "SCHOOL_COUNTRY"

	StateMasterName    StateType = "MASTER_NAME"
	StateMasterPhone   StateType = "MASTER_PHONE"
	StateMasterCountry StateType = "MASTER_COUNTRY"

	StatePartnerCategoryMenu StateType = "PARTNER_CATEGORY_MENU"
	StateGiveSubmenu         StateType = "PARTNER_GIVE_OPTIONS"
	StatePartnerSubmenu      StateType = "PARTNER_PARTNER_OPTIONS"
	StatePartnerName         StateType = "PARTNER_NAME"
	StatePartnerPhone        StateType = "PARTNER_PHONE"
	StatePartnerCountry      StateType = "PARTNER_COUNTRY"
	StatePartnerAmount       StateType = "PARTNER_AMOUNT"
	StatePartnerProof        StateType = "PARTNER_PAYMENT_PROOF"
)

// Data key constants for collected field values.
const (
	DataKeyName     DataKey = "name"
	DataKeyPhone    DataKey = "phone"
	DataKeyCountry  DataKey = "country"
	DataKeyRequest  DataKey = "prayer_request"
	DataKeyCategory DataKey = "category"
	DataKeyAmount   DataKey = "amount"
	DataKeyProofRef DataKey = "payment_proof"
)

// Record-store collection constants.
const (
	CollectionMembers       Collection = "members"
	CollectionPrayers       Collection = "prayers"
	CollectionPartners      Collection = "partners"
	CollectionSchool        Collection = "school_of_discipleship"
	CollectionMasterClass   Collection = "master_class"
	CollectionDailyMessages Collection = "daily_messages"
)
