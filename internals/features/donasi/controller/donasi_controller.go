// file: internals/features/donasi/controller/donasi_controller.go
package controller

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/configs"
	"pesantrenku_backend/internals/features/donasi/model"
	donasiservice "pesantrenku_backend/internals/features/donasi/service"
	helper "pesantrenku_backend/internals/helpers"
)

type DonasiController struct {
	DB *gorm.DB
}

func NewDonasiController(db *gorm.DB) *DonasiController {
	return &DonasiController{DB: db}
}

type CreateDonasiRequest struct {
	DonasiNama    string  `json:"donasi_nama" validate:"required,min=2,max=80"`
	DonasiEmail   *string `json:"donasi_email,omitempty" validate:"omitempty,email"`
	DonasiTelepon *string `json:"donasi_telepon,omitempty" validate:"omitempty,max=20"`
	DonasiPesan   *string `json:"donasi_pesan,omitempty"`
	DonasiJumlah  int     `json:"donasi_jumlah" validate:"required,gt=0"`
}

// POST /api/public/donasi — buat donasi + Snap token
func (ctrl *DonasiController) Create(c *fiber.Ctx) error {
	var in CreateDonasiRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if ok, resp := helper.ValidateStruct(c, in); !ok {
		return resp
	}

	orderID := fmt.Sprintf("DONASI-%d", time.Now().UnixNano())

	donasi := model.Donasi{
		DonasiNama:    in.DonasiNama,
		DonasiEmail:   in.DonasiEmail,
		DonasiTelepon: in.DonasiTelepon,
		DonasiPesan:   in.DonasiPesan,
		DonasiJumlah:  in.DonasiJumlah,
		DonasiStatus:  model.DonasiStatusPending,
		DonasiOrderID: orderID,
	}
	if err := ctrl.DB.Create(&donasi).Error; err != nil {
		log.Println("[ERROR] Gagal menyimpan donasi:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan donasi")
	}

	token, redirectURL, err := donasiservice.GenerateSnapToken(donasi)
	if err != nil {
		log.Println("[ERROR] GenerateSnapToken failed:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token pembayaran")
	}

	donasi.DonasiSnapToken = &token
	donasi.DonasiRedirectURL = &redirectURL
	if err := ctrl.DB.Model(&donasi).Updates(map[string]interface{}{
		"donasi_snap_token":   token,
		"donasi_redirect_url": redirectURL,
	}).Error; err != nil {
		log.Println("[ERROR] Gagal memperbarui token:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui token pembayaran")
	}

	return helper.JsonCreated(c, "Donasi berhasil dibuat", fiber.Map{
		"order_id":     orderID,
		"snap_token":   token,
		"redirect_url": redirectURL,
	})
}

// POST /api/public/donasi/notification — webhook Midtrans
func (ctrl *DonasiController) Notification(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	orderID, _ := body["order_id"].(string)
	statusCode, _ := body["status_code"].(string)
	grossAmount, _ := body["gross_amount"].(string)
	signature, _ := body["signature_key"].(string)

	if !donasiservice.VerifySignature(orderID, statusCode, grossAmount, configs.MidtransServerKey, signature) {
		log.Println("[WARN] Signature webhook tidak valid, order:", orderID)
		return helper.JsonError(c, fiber.StatusForbidden, "Signature tidak valid")
	}

	if err := donasiservice.HandleDonasiStatusWebhook(ctrl.DB, body); err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "Donasi tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", nil)
}

// GET /api/a/donasi — daftar donasi + rekap per status
func (ctrl *DonasiController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 200)

	q := ctrl.DB.Model(&model.Donasi{})
	if v := c.Query("status"); v != "" {
		q = q.Where("donasi_status = ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var list []model.Donasi
	if err := q.Order("donasi_created_at DESC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rekap []donasiservice.StatusAgregat
	if err := ctrl.DB.Model(&model.Donasi{}).
		Select("donasi_status AS status, COUNT(*) AS jumlah, COALESCE(SUM(donasi_jumlah),0) AS total").
		Group("donasi_status").
		Scan(&rekap).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "", fiber.Map{
		"donasi":     list,
		"per_status": donasiservice.ZeroFillDonasiStatus(rekap),
	}, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}
