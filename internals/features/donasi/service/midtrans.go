// file: internals/features/donasi/service/midtrans.go
package service

import (
	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	"pesantrenku_backend/internals/features/donasi/model"
)

var SnapClient snap.Client

// Panggil saat bootstrap app (sandbox)
func InitMidtrans(serverKey string) {
	SnapClient.New(serverKey, midtrans.Sandbox)
}

// Buat Snap token + redirect_url
func GenerateSnapToken(d model.Donasi) (string, string, error) {
	email := ""
	if d.DonasiEmail != nil {
		email = *d.DonasiEmail
	}

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  d.DonasiOrderID,
			GrossAmt: int64(d.DonasiJumlah),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: d.DonasiNama,
			Email: email,
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", "", err
	}
	return resp.Token, resp.RedirectURL, nil
}
