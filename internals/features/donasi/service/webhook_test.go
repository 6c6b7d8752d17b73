package service

import (
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"testing"

	"gorm.io/gorm"

	"pesantrenku_backend/internals/features/donasi/model"
	helper "pesantrenku_backend/internals/helpers"
)

func TestVerifySignature(t *testing.T) {
	orderID := "DONASI-1724800000000000000"
	statusCode := "200"
	grossAmount := "150000.00"
	serverKey := "SB-Mid-server-abc123"

	sum := sha512.Sum512([]byte(orderID + statusCode + grossAmount + serverKey))
	valid := hex.EncodeToString(sum[:])

	if !VerifySignature(orderID, statusCode, grossAmount, serverKey, valid) {
		t.Error("signature yang benar harus lolos verifikasi")
	}
	if VerifySignature(orderID, statusCode, grossAmount, serverKey, "deadbeef") {
		t.Error("signature palsu tidak boleh lolos")
	}
	if VerifySignature(orderID, "201", grossAmount, serverKey, valid) {
		t.Error("status_code berbeda tidak boleh lolos")
	}
}

func TestZeroFillDonasiStatus(t *testing.T) {
	rows := []StatusAgregat{
		{Status: model.DonasiStatusPaid, Jumlah: 3, Total: 450000},
		{Status: "refund", Jumlah: 9, Total: 999}, // status asing diabaikan
	}

	got := ZeroFillDonasiStatus(rows)
	if len(got) != len(model.AllDonasiStatus) {
		t.Fatalf("harus %d status, dapat %d", len(model.AllDonasiStatus), len(got))
	}
	for i, s := range model.AllDonasiStatus {
		if got[i].Status != s {
			t.Errorf("urutan[%d] = %s, harus %s", i, got[i].Status, s)
		}
	}

	byStatus := map[string]StatusAgregat{}
	for _, r := range got {
		byStatus[r.Status] = r
	}
	if byStatus[model.DonasiStatusPaid].Total != 450000 {
		t.Errorf("paid total = %d, harus 450000", byStatus[model.DonasiStatusPaid].Total)
	}
	if byStatus[model.DonasiStatusPending].Jumlah != 0 {
		t.Errorf("pending tanpa data harus nol")
	}
}

func TestWebhookOrderTidakDikenalTetapTerbacaNotFound(t *testing.T) {
	// error order asing dibungkus dengan %w supaya controller masih bisa
	// memetakannya ke 404 lewat helper.IsNotFound
	err := fmt.Errorf("donasi order_id %s: %w", "DONASI-404", gorm.ErrRecordNotFound)
	if !helper.IsNotFound(err) {
		t.Error("error order tidak dikenal harus terbaca sebagai not found")
	}
	if helper.IsNotFound(fmt.Errorf("koneksi database putus")) {
		t.Error("error lain tidak boleh terbaca sebagai not found")
	}
}
