package stocktracker

import (
	"github.com/shopspring/decimal"
)

// lot represents a single purchase of a security, used for cost basis calculations.
type lot struct {
	Date     Date
	Quantity Quantity
	Cost     Money // Total cost of the lot (quantity * price)
}

type lots []lot

// openLots replays the ledger up to the given date and returns the purchase
// lots still held for a ticker, oldest first. Sales consume lots FIFO.
func openLots(ledger *Ledger, ticker string, on Date) lots {
	var open lots
	for _, tx := range ledger.Transactions(BySecurity(ticker)) {
		if on.Before(tx.When()) {
			break
		}
		switch t := tx.(type) {
		case Buy:
			open = append(open, lot{Date: t.Date, Quantity: t.Quantity, Cost: t.Cost()})
		case Sell:
			open = open.sell(t.Quantity)
		}
	}
	return open
}

// quantity returns the total number of shares across all lots.
func (l lots) quantity() Quantity {
	var total Quantity
	for _, currentLot := range l {
		total = total.Add(currentLot.Quantity)
	}
	return total
}

// cost returns the total acquisition cost across all lots.
func (l lots) cost() Money {
	var total Money
	for _, currentLot := range l {
		total = total.Add(currentLot.Cost)
	}
	return total
}

// firstDate returns the purchase date of the oldest remaining lot.
// The zero Date is returned when no lot is held.
func (l lots) firstDate() Date {
	if len(l) == 0 {
		return Date{}
	}
	return l[0].Date
}

// fifoCostOfSelling calculates the cost of selling a quantity of shares using FIFO.
func (l lots) fifoCostOfSelling(quantityToSell Quantity) Money {
	var costOfSoldShares Money

	for _, currentLot := range l {
		if currentLot.Quantity.GreaterThan(quantityToSell) {
			// Partial sale from this lot
			costOfSoldPortion := currentLot.Cost.Mul(quantityToSell).Div(currentLot.Quantity)
			costOfSoldShares = costOfSoldShares.Add(costOfSoldPortion)
			return costOfSoldShares
		} else {
			// Full sale of this lot
			costOfSoldShares = costOfSoldShares.Add(currentLot.Cost)
			quantityToSell = quantityToSell.Sub(currentLot.Quantity)
		}
	}
	return costOfSoldShares
}

// sell reduces the available lots by a given quantity to sell using the FIFO method.
func (l lots) sell(quantityToSell Quantity) lots {
	var remainingLots lots

	for _, currentLot := range l {
		if quantityToSell.IsZero() {
			remainingLots = append(remainingLots, currentLot)
			continue
		}

		if currentLot.Quantity.GreaterThan(quantityToSell) {
			// Partial sale from this lot
			costOfSoldPortion := currentLot.Cost.Mul(quantityToSell).Div(currentLot.Quantity)
			newLot := lot{
				Date:     currentLot.Date,
				Quantity: currentLot.Quantity.Sub(quantityToSell),
				Cost:     currentLot.Cost.Sub(costOfSoldPortion),
			}
			remainingLots = append(remainingLots, newLot)
			quantityToSell = Q(decimal.Zero)
		} else {
			// Full sale of this lot
			quantityToSell = quantityToSell.Sub(currentLot.Quantity)
		}
	}
	return remainingLots
}
