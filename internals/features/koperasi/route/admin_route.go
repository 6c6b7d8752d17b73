package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/features/koperasi/controller"
	"pesantrenku_backend/internals/helpers/oss"
)

// KoperasiAdminRoutes: anggota, arus kas, dan statistik koperasi (group /api/a)
func KoperasiAdminRoutes(admin fiber.Router, db *gorm.DB, ossSvc *oss.Service) {
	anggotaCtrl := controller.NewAnggotaController(db)
	kasCtrl := controller.NewKasController(db, ossSvc)

	kop := admin.Group("/koperasi")

	anggota := kop.Group("/anggota")
	{
		anggota.Post("/", anggotaCtrl.Create)
		anggota.Get("/", anggotaCtrl.List)
		anggota.Get("/search", anggotaCtrl.Search)
		anggota.Get("/:id", anggotaCtrl.GetByID)
		anggota.Get("/:id/ringkasan", anggotaCtrl.Ringkasan)
		anggota.Put("/:id", anggotaCtrl.Update)
		anggota.Delete("/:id", anggotaCtrl.Delete)
	}

	pemasukan := kop.Group("/pemasukan")
	{
		pemasukan.Post("/", kasCtrl.CreatePemasukan)
		pemasukan.Get("/", kasCtrl.ListPemasukan)
		pemasukan.Put("/:id", kasCtrl.UpdatePemasukan)
		pemasukan.Delete("/:id", kasCtrl.DeletePemasukan)
	}

	pengeluaran := kop.Group("/pengeluaran")
	{
		pengeluaran.Post("/", kasCtrl.CreatePengeluaran)
		pengeluaran.Get("/", kasCtrl.ListPengeluaran)
		pengeluaran.Put("/:id", kasCtrl.UpdatePengeluaran)
		pengeluaran.Delete("/:id", kasCtrl.DeletePengeluaran)
	}

	kop.Get("/stats", kasCtrl.Stats)
}
