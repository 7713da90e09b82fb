package menu

import (
	"fmt"

	"github.com/cleared-dev/billmgr/internal/model"
)

func (s *Session) addBill() error {
	name, err := s.prompt.Ask("Bill Name: ")
	if err != nil {
		return err
	}
	amount, err := s.prompt.Amount()
	if err != nil {
		return err
	}

	s.store.Add(model.Bill{Name: name, Amount: amount})
	s.log.Debug("bill added", "name", name, "amount", amount)
	s.prompt.Println("Bills Added")
	return nil
}

func (s *Session) viewBills() {
	if s.store.Len() == 0 {
		s.prompt.Println("No bills")
		return
	}
	s.printBills()
	s.prompt.Println("Total: " + model.FormatDecimal(s.store.Total()))
}

func (s *Session) removeBill() error {
	s.printBills()
	name, err := s.prompt.Ask("Enter bill name to remove: ")
	if err != nil {
		return err
	}

	if !s.store.Remove(name) {
		s.prompt.Println("Bill Not Found!")
		return nil
	}
	s.log.Debug("bill removed", "name", name)
	s.prompt.Println("Bill removed!")
	return nil
}

func (s *Session) editBill() error {
	s.printBills()
	name, err := s.prompt.Ask("Enter bill name to Edit: ")
	if err != nil {
		return err
	}
	amount, err := s.prompt.Amount()
	if err != nil {
		return err
	}

	if !s.store.Update(name, amount) {
		s.prompt.Println("Bill not found!")
		return nil
	}
	s.log.Debug("bill updated", "name", name, "amount", amount)
	s.prompt.Println(fmt.Sprintf("%q is Edited with new amount: %s", name, model.FormatAmount(amount)))
	return nil
}

func (s *Session) printBills() {
	for _, b := range s.store.List() {
		s.prompt.Println(b.String())
	}
}
