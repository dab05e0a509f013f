package request

import "wascrap/internal/usecase"

type RegisterBuyerRequest struct {
	FullName  string `json:"full_name"`
	Phone     string `json:"phone"`
	PanCard   string `json:"pan_card"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	Pincode   string `json:"pincode"`
	CarNumber string `json:"car_number"`
}

func (r RegisterBuyerRequest) ToInput() usecase.BuyerInput {
	return usecase.BuyerInput{
		FullName:  r.FullName,
		Phone:     r.Phone,
		PanCard:   r.PanCard,
		Address:   r.Address,
		City:      r.City,
		State:     r.State,
		Pincode:   r.Pincode,
		CarNumber: r.CarNumber,
	}
}

type RejectBuyerRequest struct {
	Reason string `json:"reason"`
}
