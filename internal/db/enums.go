package db

// ContactStatus tracks how far staff got with a contact message.
type ContactStatus string

const (
	ContactStatusNew      ContactStatus = "new"
	ContactStatusRead     ContactStatus = "read"
	ContactStatusReplied  ContactStatus = "replied"
	ContactStatusArchived ContactStatus = "archived"
)

var contactStatusLabels = map[ContactStatus]string{
	ContactStatusNew:      "New",
	ContactStatusRead:     "Read",
	ContactStatusReplied:  "Replied",
	ContactStatusArchived: "Archived",
}

// Valid reports whether s is a known contact status.
func (s ContactStatus) Valid() bool {
	_, ok := contactStatusLabels[s]
	return ok
}

// Label returns the display label.
func (s ContactStatus) Label() string {
	return contactStatusLabels[s]
}

// DonationStatus is the lifecycle of a blood donation registration.
type DonationStatus string

const (
	DonationStatusPending   DonationStatus = "pending"
	DonationStatusConfirmed DonationStatus = "confirmed"
	DonationStatusCompleted DonationStatus = "completed"
	DonationStatusCancelled DonationStatus = "cancelled"
)

var donationStatusLabels = map[DonationStatus]string{
	DonationStatusPending:   "Pending",
	DonationStatusConfirmed: "Confirmed",
	DonationStatusCompleted: "Completed",
	DonationStatusCancelled: "Cancelled",
}

// Valid reports whether s is a known donation status.
func (s DonationStatus) Valid() bool {
	_, ok := donationStatusLabels[s]
	return ok
}

// Label returns the display label.
func (s DonationStatus) Label() string {
	return donationStatusLabels[s]
}

// BloodType is one of the eight ABO/Rh groups.
type BloodType string

const (
	BloodTypeAPos  BloodType = "A+"
	BloodTypeANeg  BloodType = "A-"
	BloodTypeBPos  BloodType = "B+"
	BloodTypeBNeg  BloodType = "B-"
	BloodTypeABPos BloodType = "AB+"
	BloodTypeABNeg BloodType = "AB-"
	BloodTypeOPos  BloodType = "O+"
	BloodTypeONeg  BloodType = "O-"
)

// BloodTypes lists every accepted blood type in display order.
var BloodTypes = []BloodType{
	BloodTypeAPos, BloodTypeANeg,
	BloodTypeBPos, BloodTypeBNeg,
	BloodTypeABPos, BloodTypeABNeg,
	BloodTypeOPos, BloodTypeONeg,
}

// Valid reports whether b is a known blood type.
func (b BloodType) Valid() bool {
	for _, candidate := range BloodTypes {
		if b == candidate {
			return true
		}
	}
	return false
}

// Label returns the display label, which is the type itself.
func (b BloodType) Label() string {
	if !b.Valid() {
		return ""
	}
	return string(b)
}

// TeamPosition is the role a team member holds.
type TeamPosition string

const (
	PositionPresident        TeamPosition = "president"
	PositionVicePresident    TeamPosition = "vice_president"
	PositionSecretary        TeamPosition = "secretary"
	PositionTreasurer        TeamPosition = "treasurer"
	PositionEventCoordinator TeamPosition = "event_coordinator"
	PositionPublicRelations  TeamPosition = "public_relations"
	PositionMember           TeamPosition = "member"
	PositionAdvisor          TeamPosition = "advisor"
)

var positionLabels = map[TeamPosition]string{
	PositionPresident:        "President",
	PositionVicePresident:    "Vice President",
	PositionSecretary:        "Secretary",
	PositionTreasurer:        "Treasurer",
	PositionEventCoordinator: "Event Coordinator",
	PositionPublicRelations:  "Public Relations",
	PositionMember:           "Member",
	PositionAdvisor:          "Advisor",
}

// Valid reports whether p is a known position.
func (p TeamPosition) Valid() bool {
	_, ok := positionLabels[p]
	return ok
}

// Label returns the display label.
func (p TeamPosition) Label() string {
	return positionLabels[p]
}
