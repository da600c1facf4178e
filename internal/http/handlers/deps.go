package handlers

import (
	"petshop/internal/repos"
	"petshop/internal/services"
)

type Deps struct {
	PetHandler      *PetHandler
	CustomerHandler *CustomerHandler
	SaleHandler     *SaleHandler
}

func NewDeps(store *repos.Provider) *Deps {
	return &Deps{
		PetHandler:      &PetHandler{Pets: services.NewPetService(store)},
		CustomerHandler: &CustomerHandler{Customers: services.NewCustomerService(store)},
		SaleHandler:     &SaleHandler{Sales: services.NewSaleService(store)},
	}
}

// Dispatcher registers every resource under its collection name.
func (d *Deps) Dispatcher() *Dispatcher {
	disp := NewDispatcher()
	disp.Register("pets", d.PetHandler.Resource())
	disp.Register("customers", d.CustomerHandler.Resource())
	disp.Register("sales", d.SaleHandler.Resource())
	return disp
}
