// file: internals/route/index.go
package route

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/configs"
	"pesantrenku_backend/internals/constants"
	database "pesantrenku_backend/internals/databases"
	helper "pesantrenku_backend/internals/helpers"
	"pesantrenku_backend/internals/helpers/oss"
	middleware "pesantrenku_backend/internals/middlewares/auth"

	absensiRoute "pesantrenku_backend/internals/features/absensi/route"
	dashboardRoute "pesantrenku_backend/internals/features/dashboard/route"
	donasiRoute "pesantrenku_backend/internals/features/donasi/route"
	guruRoute "pesantrenku_backend/internals/features/guru/route"
	kesehatanRoute "pesantrenku_backend/internals/features/kesehatan/route"
	koperasiRoute "pesantrenku_backend/internals/features/koperasi/route"
	nilaiRoute "pesantrenku_backend/internals/features/nilai/route"
	pelanggaranRoute "pesantrenku_backend/internals/features/pelanggaran/route"
	pembayaranRoute "pesantrenku_backend/internals/features/pembayaran/route"
	pendaftaranRoute "pesantrenku_backend/internals/features/pendaftaran/route"
	santriRoute "pesantrenku_backend/internals/features/santri/route"
	usersRoute "pesantrenku_backend/internals/features/users/route"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	ossSvc, err := oss.NewServiceFromEnv()
	if err != nil {
		log.Println("⚠️ OSS tidak dikonfigurasi, upload bukti nonaktif:", err)
	}

	authJWT := middleware.AuthJWT(middleware.AuthJWTOpts{
		Secret:              configs.JWTSecret,
		AllowCookieFallback: true,
	})

	// ===================== HEALTH =====================
	app.Get("/health", func(c *fiber.Ctx) error {
		return helper.JsonOK(c, "", fiber.Map{
			"status": "ok",
			"uptime": time.Since(startTime).String(),
		})
	})

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	auth := app.Group("/api/auth")
	usersRoute.AuthRoutes(auth, db,
		authJWT,
		middleware.IsOwner("manajemen akun"),
	)

	// ===================== PRIVATE (USER) =====================
	log.Println("[INFO] Setting up PRIVATE group...")
	user := app.Group("/api/u", authJWT)
	usersRoute.UserRoutes(user, db)

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")
	donasiRoute.DonasiPublicRoutes(public, db)
	pendaftaranRoute.PendaftaranPublicRoutes(public, db)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		authJWT,
		middleware.RequireRoles("administrasi pesantren", constants.AllRoles...),
	)

	santriRoute.SantriAdminRoutes(admin, db)
	guruRoute.GuruAdminRoutes(admin, db)
	absensiRoute.AbsensiAdminRoutes(admin, db)
	koperasiRoute.KoperasiAdminRoutes(admin, db, ossSvc)
	kesehatanRoute.KesehatanAdminRoutes(admin, db)
	nilaiRoute.NilaiAdminRoutes(admin, db)
	pelanggaranRoute.PelanggaranAdminRoutes(admin, db, ossSvc)
	pembayaranRoute.PembayaranAdminRoutes(admin, db, ossSvc)
	pendaftaranRoute.PendaftaranAdminRoutes(admin, db)
	donasiRoute.DonasiAdminRoutes(admin, db)
	dashboardRoute.DashboardAdminRoutes(admin, db, database.Redis)
}
