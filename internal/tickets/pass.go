package tickets

import "encoding/json"

// WalletPass is the portable wallet document projected from a ticket.
// It is never persisted on its own; it is regenerated on demand. The
// document is shaped like an unsigned Apple Wallet pass and explicitly
// NOT signed — a platform wallet will not accept it as genuine.
type WalletPass struct {
	FormatVersion      int             `json:"formatVersion"`
	PassTypeIdentifier string          `json:"passTypeIdentifier"`
	SerialNumber       string          `json:"serialNumber"`
	TeamIdentifier     string          `json:"teamIdentifier"`
	OrganizationName   string          `json:"organizationName"`
	Description        string          `json:"description"`
	LogoText           string          `json:"logoText"`
	ForegroundColor    string          `json:"foregroundColor"`
	BackgroundColor    string          `json:"backgroundColor"`
	EventTicket        PassFieldGroups `json:"eventTicket"`
	Barcode            PassBarcode     `json:"barcode"`
}

// PassFieldGroups holds the labeled display fields of an event ticket.
type PassFieldGroups struct {
	PrimaryFields   []PassField `json:"primaryFields"`
	SecondaryFields []PassField `json:"secondaryFields"`
	AuxiliaryFields []PassField `json:"auxiliaryFields"`
	BackFields      []PassField `json:"backFields"`
}

// PassField is a single labeled value on the pass face.
type PassField struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// PassBarcode carries the scannable message of the pass.
type PassBarcode struct {
	Message         string `json:"message"`
	Format          string `json:"format"`
	MessageEncoding string `json:"messageEncoding"`
}

// BarcodeMessage is the parsed content of a pass barcode.
type BarcodeMessage struct {
	TicketID string `json:"ticketId"`
	EventID  string `json:"eventId"`
	Checksum string `json:"checksum"`
}

// DecodeBarcodeMessage parses a pass barcode message back into its
// identity fields.
func DecodeBarcodeMessage(raw string) (BarcodeMessage, error) {
	var m BarcodeMessage
	err := json.Unmarshal([]byte(raw), &m)
	return m, err
}

// PassEncoder maps tickets to wallet pass documents. Pure: no I/O, a
// well-formed ticket always encodes.
type PassEncoder struct {
	passTypeIdentifier string
	teamIdentifier     string
	organizationName   string
}

// NewPassEncoder creates an encoder stamped with the issuing
// organization's identifiers.
func NewPassEncoder(passTypeIdentifier, teamIdentifier, organizationName string) *PassEncoder {
	return &PassEncoder{
		passTypeIdentifier: passTypeIdentifier,
		teamIdentifier:     teamIdentifier,
		organizationName:   organizationName,
	}
}

// Encode projects a ticket into its wallet pass document.
func (e *PassEncoder) Encode(t *Ticket) WalletPass {
	// Marshalling a struct of plain strings cannot fail.
	message, _ := json.Marshal(BarcodeMessage{
		TicketID: t.ID,
		EventID:  t.EventID,
		Checksum: t.Checksum,
	})

	return WalletPass{
		FormatVersion:      1,
		PassTypeIdentifier: e.passTypeIdentifier,
		SerialNumber:       t.ID,
		TeamIdentifier:     e.teamIdentifier,
		OrganizationName:   e.organizationName,
		Description:        "Ticket for " + t.EventTitle,
		LogoText:           e.organizationName,
		ForegroundColor:    "rgb(255, 255, 255)",
		BackgroundColor:    "rgb(99, 102, 241)",
		EventTicket: PassFieldGroups{
			PrimaryFields: []PassField{
				{Key: "event", Label: "EVENT", Value: t.EventTitle},
			},
			SecondaryFields: []PassField{
				{Key: "date", Label: "DATE", Value: t.EventDate.Format("2006-01-02")},
				{Key: "time", Label: "TIME", Value: t.EventDate.Format("15:04")},
			},
			AuxiliaryFields: []PassField{
				{Key: "location", Label: "LOCATION", Value: t.EventLocation},
				{Key: "ticket", Label: "TICKET", Value: "#" + t.ID},
			},
			BackFields: []PassField{
				{
					Key:   "terms",
					Label: "Terms and Conditions",
					Value: "This ticket is valid for one person only. Please arrive 30 minutes before the event starts.",
				},
			},
		},
		Barcode: PassBarcode{
			Message:         string(message),
			Format:          "PKBarcodeFormatQR",
			MessageEncoding: "iso-8859-1",
		},
	}
}
