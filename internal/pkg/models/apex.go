package models

// Business statuses returned by the Apex ERP. The gateway hands these back
// verbatim; mapping them to HTTP responses is the caller's job.
const (
	ApexStatusOK              = "OK"
	ApexStatusCardNotFound    = "CARD_NOT_FOUND"
	ApexStatusCardAlreadyUsed = "CARD_ALREADY_USED"
)

// ApexPromoFlag carries a single opt-in flag on the outbound payload
type ApexPromoFlag struct {
	Enabled bool `json:"enabled"`
}

// ApexPromoFlags carries both channel opt-in flags on a registration payload
type ApexPromoFlags struct {
	SMS   ApexPromoFlag `json:"sms"`
	Email ApexPromoFlag `json:"email"`
}

// ApexRegisterPayload is the ERP-shaped projection of a registration request.
// It is built fresh for each call and never persisted.
type ApexRegisterPayload struct {
	Branch        string         `json:"branch"`
	Gender        string         `json:"gender"`
	FirstName     string         `json:"firstName"`
	LastName      string         `json:"lastName"`
	DateOfBirth   string         `json:"dateOfBirth"`
	Address       string         `json:"address"`
	City          string         `json:"city"`
	Country       string         `json:"country"`
	Email         string         `json:"email"`
	CardNumber    string         `json:"cardNumber"`
	PhoneCode     string         `json:"phoneCode"`
	PhoneNumber   string         `json:"phoneNumber"`
	TermsAccepted bool           `json:"termsAccepted"`
	PromoChannels ApexPromoFlags `json:"promoChannels"`
}

// ApexPartialPromoFlags carries only the channel flags that were submitted
type ApexPartialPromoFlags struct {
	SMS   *ApexPromoFlag `json:"sms,omitempty"`
	Email *ApexPromoFlag `json:"email,omitempty"`
}

// ApexUpdatePayload is the ERP-shaped projection of an update request.
// CardNumber is always present: it is the business identity key in Apex.
// All other fields are sent only when the client submitted them.
type ApexUpdatePayload struct {
	CardNumber    string                 `json:"cardNumber"`
	Branch        *string                `json:"branch,omitempty"`
	Gender        *string                `json:"gender,omitempty"`
	FirstName     *string                `json:"firstName,omitempty"`
	LastName      *string                `json:"lastName,omitempty"`
	DateOfBirth   *string                `json:"dateOfBirth,omitempty"`
	Address       *string                `json:"address,omitempty"`
	City          *string                `json:"city,omitempty"`
	Country       *string                `json:"country,omitempty"`
	Email         *string                `json:"email,omitempty"`
	PhoneCode     *string                `json:"phoneCode,omitempty"`
	PhoneNumber   *string                `json:"phoneNumber,omitempty"`
	PromoChannels *ApexPartialPromoFlags `json:"promoChannels,omitempty"`
}

// ApexChannelTimestamps carries the per-channel opt-in timestamps Apex
// reports on a successful call. Kept as raw strings so the wire value is
// preserved verbatim; parsing happens where the values get persisted.
type ApexChannelTimestamps struct {
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// ApexPromoTimestamps groups the per-channel timestamps on an Apex response
type ApexPromoTimestamps struct {
	SMS   *ApexChannelTimestamps `json:"sms,omitempty"`
	Email *ApexChannelTimestamps `json:"email,omitempty"`
}

// ApexResult is the decoded outcome of a gateway call. Status is the ERP's
// business status, untouched. Timestamp fields are only populated on OK
// responses; the ERP sends nothing useful alongside a rejection.
type ApexResult struct {
	Status        string               `json:"status"`
	CreatedAt     string               `json:"createdAt,omitempty"`
	UpdatedAt     string               `json:"updatedAt,omitempty"`
	PromoChannels *ApexPromoTimestamps `json:"promoChannels,omitempty"`
}
