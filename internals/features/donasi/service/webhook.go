// file: internals/features/donasi/service/webhook.go
package service

import (
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"pesantrenku_backend/internals/features/donasi/model"
)

// VerifySignature mencocokkan signature_key notifikasi Midtrans:
// sha512(order_id + status_code + gross_amount + serverKey).
func VerifySignature(orderID, statusCode, grossAmount, serverKey, signature string) bool {
	sum := sha512.Sum512([]byte(orderID + statusCode + grossAmount + serverKey))
	return hex.EncodeToString(sum[:]) == signature
}

// HandleDonasiStatusWebhook dipanggil saat menerima notifikasi dari Midtrans.
func HandleDonasiStatusWebhook(db *gorm.DB, body map[string]interface{}) error {
	orderID, ok1 := body["order_id"].(string)
	status, ok2 := body["transaction_status"].(string)
	if !ok1 || !ok2 {
		log.Println("[ERROR] Payload webhook tidak lengkap:", body)
		return fmt.Errorf("invalid payload")
	}

	log.Println("📄 Order ID:", orderID)
	log.Println("📌 Transaction Status:", status)

	var donasi model.Donasi
	if err := db.Where("donasi_order_id = ?", orderID).First(&donasi).Error; err != nil {
		log.Println("[ERROR] Donasi tidak ditemukan:", err)
		// biarkan gorm.ErrRecordNotFound tetap terbaca lewat errors.Is,
		// controller memetakannya ke 404 (Midtrans kadang kirim order asing)
		return fmt.Errorf("donasi order_id %s: %w", orderID, err)
	}

	switch status {
	case "capture", "settlement":
		now := time.Now()
		donasi.DonasiStatus = model.DonasiStatusPaid
		donasi.DonasiPaidAt = &now
	case "expire":
		donasi.DonasiStatus = model.DonasiStatusExpired
	case "cancel", "deny":
		donasi.DonasiStatus = model.DonasiStatusCanceled
	default:
		log.Println("[INFO] Status tidak diproses:", status)
		return nil
	}

	if err := db.Save(&donasi).Error; err != nil {
		log.Println("[ERROR] Gagal menyimpan status donasi:", err)
		return err
	}
	return nil
}

// StatusAgregat: satu baris hasil GROUP BY status.
type StatusAgregat struct {
	Status string `gorm:"column:status" json:"status"`
	Jumlah int64  `gorm:"column:jumlah" json:"jumlah"`
	Total  int64  `gorm:"column:total" json:"total"`
}

// ZeroFillDonasiStatus mengembalikan satu entri untuk SETIAP status,
// urut sesuai deklarasi; status tanpa data bernilai nol.
func ZeroFillDonasiStatus(rows []StatusAgregat) []StatusAgregat {
	per := make(map[string]StatusAgregat, len(model.AllDonasiStatus))
	known := map[string]bool{}
	for _, s := range model.AllDonasiStatus {
		known[s] = true
	}
	for _, r := range rows {
		if !known[r.Status] {
			continue
		}
		agg := per[r.Status]
		agg.Status = r.Status
		agg.Jumlah += r.Jumlah
		agg.Total += r.Total
		per[r.Status] = agg
	}

	out := make([]StatusAgregat, 0, len(model.AllDonasiStatus))
	for _, s := range model.AllDonasiStatus {
		agg := per[s]
		agg.Status = s
		out = append(out, agg)
	}
	return out
}
