package stocktracker

import (
	"encoding/json"
	"fmt"
)

// CommandType is a typed string for identifying transaction commands.
type CommandType string

// Command types used for identifying transactions.
const (
	CmdBuy  CommandType = "buy"
	CmdSell CommandType = "sell"
)

// DefaultCurrency is the currency assumed when a transaction does not name one.
const DefaultCurrency = "USD"

// Transaction defines the common interface for the trade records
// that can be recorded in the ledger.
type Transaction interface {
	What() CommandType // What returns the command type of the transaction (e.g., "buy", "sell").
	When() Date        // When returns the date on which the transaction occurred.
	Equal(Transaction) bool
	Validate(ledger *Ledger) (Transaction, error)
}

type baseCmd struct {
	Command CommandType `json:"command"`        // Command specifies the type of transaction (e.g., "buy", "sell").
	Date    Date        `json:"date"`           // Date is the date when the transaction took place.
	Memo    string      `json:"memo,omitempty"` // Memo provides an optional rationale or note for the transaction.
}

// What returns the command name for the transaction, which is used to identify the type of transaction.
func (t baseCmd) What() CommandType {
	return t.Command
}

// When returns the date of the transaction.
func (t baseCmd) When() Date {
	return t.Date
}

// Rationale returns the memo associated with the transaction.
func (t baseCmd) Rationale() string {
	return t.Memo
}

// MarshalJSON implements the json.Marshaler interface for baseCmd.
func (t baseCmd) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("command", t.Command)
	w.Append("date", t.Date)
	w.Optional("memo", t.Memo)
	return w.MarshalJSON()
}

// Validate checks the base command fields. It sets the date to today if it's zero.
// It's meant to be embedded in other transaction validation methods.
func (t *baseCmd) Validate() {
	if t.Date == (Date{}) {
		t.Date = Today()
	}
}

// secCmd is a component for ticker-based transactions (buy, sell).
type secCmd struct {
	baseCmd
	Security string `json:"security"` // Security is the ticker symbol of the stock involved in the transaction.
}

// Validate checks the security command fields. It validates the base command
// and normalizes the ticker to upper case before checking its format.
func (t *secCmd) Validate() error {
	t.baseCmd.Validate()

	// quick fix: user input is accepted in any case.
	t.Security = NormalizeTicker(t.Security)

	return ValidateTicker(t.Security)
}

// MarshalJSON implements the json.Marshaler interface for secCmd.
func (t secCmd) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.baseCmd)
	w.Append("security", t.Security)
	return w.MarshalJSON()
}

// Buy represents a transaction where a quantity of shares is purchased
// at a given price per share.
type Buy struct {
	secCmd
	Quantity Quantity // Quantity is the number of shares bought.
	Price    Money    // Price is the purchase price per share.
}

// NewBuy creates a new Buy transaction.
func NewBuy(day Date, memo, security string, quantity Quantity, price Money) Buy {
	return Buy{
		secCmd:   secCmd{baseCmd: baseCmd{Command: CmdBuy, Date: day, Memo: memo}, Security: security},
		Quantity: quantity,
		Price:    price,
	}
}

// Cost returns the total cost of the purchase.
func (t Buy) Cost() Money { return t.Price.Mul(t.Quantity) }

// Currency returns the currency of the transaction.
func (t Buy) Currency() string { return t.Price.Currency() }

// MarshalJSON implements the json.Marshaler interface for Buy.
func (t Buy) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.secCmd)
	w.Append("quantity", t.Quantity)
	// prices per share are persisted with all their digits.
	w.Append("price", t.Price.value)
	w.Optional("currency", t.Price.cur)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Buy.
// It handles the custom structure where price and currency are separate fields.
func (t *Buy) UnmarshalJSON(data []byte) error {
	// Use a temporary type that has all possible fields.
	var temp struct {
		secCmd
		priceCmd
		Quantity Quantity `json:"quantity"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}

	t.secCmd = temp.secCmd
	t.Quantity = temp.Quantity
	t.Price = temp.Money()
	return nil
}

func (t Buy) Equal(other Transaction) bool {
	o, ok := other.(Buy)
	return ok && t.secCmd == o.secCmd && t.Quantity.Equal(o.Quantity) && t.Price.Equal(o.Price)
}

// Validate checks the Buy transaction's fields. It ensures that the quantity
// and the price per share are positive, and fills the currency with the
// ledger's one when missing.
func (t Buy) Validate(ledger *Ledger) (Transaction, error) {
	if err := t.secCmd.Validate(); err != nil {
		return t, err
	}

	if t.Quantity.IsNegative() || t.Quantity.IsZero() {
		return t, fmt.Errorf("buy transaction quantity must be positive, got %s", t.Quantity.String())
	}
	if t.Price.IsNegative() || t.Price.IsZero() {
		return t, fmt.Errorf("buy transaction price must be positive, got %s", t.Price.String())
	}

	// first the quick fix
	currency := ledger.Currency()
	if t.Currency() == "" {
		t.Price.cur = currency
	} else if currency != t.Currency() {
		return t, fmt.Errorf("buy transaction currency %s does not match ledger currency %s", t.Currency(), currency)
	}
	return t, nil
}

// Sell represents a transaction where a quantity of shares is sold
// at a given price per share.
type Sell struct {
	secCmd
	Quantity Quantity // Quantity is the number of shares sold.
	Price    Money    // Price is the sale price per share.
}

// NewSell creates a new Sell transaction.
// If the quantity is set to 0, it signifies a "sell all" instruction.
// The actual number of shares will be determined during the validation phase
// based on the position on the transaction date.
func NewSell(day Date, memo, security string, quantity Quantity, price Money) Sell {
	return Sell{
		secCmd:   secCmd{baseCmd: baseCmd{Command: CmdSell, Date: day, Memo: memo}, Security: security},
		Quantity: quantity,
		Price:    price,
	}
}

// Proceeds returns the total proceeds of the sale.
func (t Sell) Proceeds() Money { return t.Price.Mul(t.Quantity) }

// Currency returns the currency of the transaction.
func (t Sell) Currency() string { return t.Price.Currency() }

// MarshalJSON implements the json.Marshaler interface for Sell.
func (t Sell) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.secCmd)
	w.Append("quantity", t.Quantity)
	// prices per share are persisted with all their digits.
	w.Append("price", t.Price.value)
	w.Optional("currency", t.Price.cur)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Sell.
// It handles the custom structure where price and currency are separate fields.
func (t *Sell) UnmarshalJSON(data []byte) error {
	// Use a temporary type that has all possible fields.
	var temp struct {
		secCmd
		priceCmd
		Quantity Quantity `json:"quantity"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}

	t.secCmd = temp.secCmd
	t.Quantity = temp.Quantity
	t.Price = temp.Money()
	return nil
}

func (t Sell) Equal(other Transaction) bool {
	o, ok := other.(Sell)
	return ok && t.secCmd == o.secCmd && t.Quantity.Equal(o.Quantity) && t.Price.Equal(o.Price)
}

// Validate checks the Sell transaction's fields.
// It handles the "sell all" case by resolving a quantity of 0 to the total
// position size on the transaction date. It ensures the final quantity and
// price are positive and that the position is sufficient to cover the sale.
func (t Sell) Validate(ledger *Ledger) (Transaction, error) {
	if err := t.secCmd.Validate(); err != nil {
		return t, err
	}

	// Quick fix currency and check
	currency := ledger.Currency()
	if t.Currency() == "" {
		t.Price.cur = currency
	} else if currency != t.Currency() {
		return t, fmt.Errorf("sell transaction currency %s does not match ledger currency %s", t.Currency(), currency)
	}
	if !t.Price.IsPositive() {
		return t, fmt.Errorf("sell transaction price must be positive, got %v", t.Price)
	}

	pos := ledger.Position(t.Security, t.When())
	if t.Quantity.IsZero() {
		// quick fix, sell all.
		t.Quantity = pos
	}

	if !t.Quantity.IsPositive() {
		return t, fmt.Errorf("sell transaction quantity must be positive, got %s", t.Quantity.String())
	}

	if pos.LessThan(t.Quantity) {
		return t, fmt.Errorf("on %s, cannot sell %v shares of %s, only %v available", t.When(), t.Quantity, t.Security, pos)
	}

	return t, nil
}
