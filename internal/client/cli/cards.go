package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/afriwallet/afriwallet/internal/client/store"
)

// keyCards is the on-device store key holding the saved cards list.
const keyCards = "cards"

// card is a payment card saved on the device. The number is only ever
// displayed masked.
type card struct {
	Holder string `json:"holder"`
	Number string `json:"number"`
	Expiry string `json:"expiry"`
}

// Cards shows the cards saved on this device and offers adding a new one.
func (a *App) Cards(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Sign in first")
		return nil
	}

	cards, err := loadCards(ctx, a.store)
	if err != nil {
		return err
	}

	if len(cards) == 0 {
		printlnFn("No saved cards")
	}
	for i, c := range cards {
		printlnFn(fmt.Sprintf("%d. %s  %s  exp %s", i+1, maskCardNumber(c.Number), c.Holder, c.Expiry))
	}

	answer, err := getSimpleText(a.reader, "Add a card? (y/N)", os.Stdout)
	if err != nil || answer != "y" {
		return err
	}
	return a.addCard(ctx, cards)
}

func (a *App) addCard(ctx context.Context, cards []card) error {
	holder, err := getSimpleText(a.reader, "Cardholder name", os.Stdout)
	if err != nil {
		return err
	}
	number, err := getDigits(a.reader, "Card number", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	if len(number) < 12 || len(number) > 19 {
		printlnFn("Card number must be 12 to 19 digits")
		return nil
	}
	expiry, err := getSimpleText(a.reader, "Expiry (MM/YY)", os.Stdout)
	if err != nil {
		return err
	}

	cards = append(cards, card{Holder: holder, Number: number, Expiry: expiry})
	if err := saveCards(ctx, a.store, cards); err != nil {
		return err
	}
	printlnFn("Card saved:", maskCardNumber(number))
	return nil
}

func loadCards(ctx context.Context, st store.Store) ([]card, error) {
	raw, err := st.Get(ctx, keyCards)
	if err != nil {
		return nil, fmt.Errorf("read cards: %w", err)
	}
	if raw == nil {
		return nil, nil
	}
	var cards []card
	if err := json.Unmarshal(raw, &cards); err != nil {
		return nil, fmt.Errorf("decode cards: %w", err)
	}
	return cards, nil
}

func saveCards(ctx context.Context, st store.Store, cards []card) error {
	raw, err := json.Marshal(cards)
	if err != nil {
		return fmt.Errorf("encode cards: %w", err)
	}
	if err := st.Set(ctx, keyCards, raw); err != nil {
		return fmt.Errorf("persist cards: %w", err)
	}
	return nil
}
