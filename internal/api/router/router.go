package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/agi040922/HR-Management-sub000/config"
	"github.com/agi040922/HR-Management-sub000/internal/api/handler"
	"github.com/agi040922/HR-Management-sub000/internal/api/middleware"
	"github.com/agi040922/HR-Management-sub000/pkg/jwt"
	"github.com/agi040922/HR-Management-sub000/pkg/redis"
)

// maxBodyBytes 요청 본문 상한. 템플릿 주간 구조 JSON도 1MB면 충분하다.
const maxBodyBytes = 1 << 20

// Setup Gin 라우트 엔진 초기화
func Setup(cfg *config.Config, h *handler.Handler, verifier *jwt.Verifier, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 전역 미들웨어 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(maxBodyBytes))

	// ── 헬스체크 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 (전 구간 인증 필요: 토큰 발급은 외부 인증 서비스 책임) ──
	v1 := r.Group("/api/v1")
	v1.Use(middleware.JWTAuth(verifier, rdb))
	{
		// 매장 모듈
		stores := v1.Group("/stores")
		{
			stores.GET("", h.Store.ListStores)
			stores.GET("/:id", h.Store.GetStore)
			stores.POST("", middleware.RoleAuth("owner"), h.Store.CreateStore)
			stores.PUT("/:id", middleware.RoleAuth("owner", "manager"), h.Store.UpdateStore)
			stores.DELETE("/:id", middleware.RoleAuth("owner"), h.Store.DeleteStore)

			// 직원 모듈 (매장 하위)
			stores.GET("/:id/employees", h.Employee.ListEmployees)
			stores.POST("/:id/employees", middleware.RoleAuth("owner", "manager"), h.Employee.CreateEmployee)

			// 스케줄 템플릿 모듈 (매장 하위)
			stores.GET("/:id/schedule-templates", h.Template.ListTemplates)
			stores.POST("/:id/schedule-templates", middleware.RoleAuth("owner", "manager"), h.Template.CreateTemplate)

			// 급여 산출 모듈
			stores.GET("/:id/payroll", h.Payroll.GetStorePayroll)

			// 최적화 모듈 (실행은 과금이 큰 연산이라 속도 제한을 건다)
			stores.POST("/:id/optimize",
				middleware.RoleAuth("owner", "manager"),
				middleware.RateLimit(rdb, 10, time.Minute),
				h.Optimize.RunOptimization)
			stores.GET("/:id/optimizations", h.Optimize.ListOptimizations)
			stores.GET("/:id/optimizations/:record_id", h.Optimize.GetOptimization)

			// 근로계약 모듈 (매장 하위)
			stores.GET("/:id/contracts", h.Contract.ListContracts)
			stores.POST("/:id/contracts", middleware.RoleAuth("owner", "manager"), h.Contract.CreateContract)

			// 내보내기 모듈
			stores.GET("/:id/export/payroll", middleware.RoleAuth("owner", "manager"), h.Export.ExportPayroll)
		}

		// 직원 모듈 (단건)
		employees := v1.Group("/employees")
		{
			employees.GET("/:id", h.Employee.GetEmployee)
			employees.PUT("/:id", middleware.RoleAuth("owner", "manager"), h.Employee.UpdateEmployee)
			employees.DELETE("/:id", middleware.RoleAuth("owner", "manager"), h.Employee.DeleteEmployee)
			employees.GET("/:id/payroll", h.Payroll.GetEmployeePayroll)
		}

		// 스케줄 템플릿 모듈 (단건 + 주간 구조 편집)
		templates := v1.Group("/schedule-templates")
		{
			templates.GET("/:id", h.Template.GetTemplate)
			templates.PUT("/:id", middleware.RoleAuth("owner", "manager"), h.Template.UpdateTemplate)
			templates.DELETE("/:id", middleware.RoleAuth("owner", "manager"), h.Template.DeleteTemplate)
			templates.PUT("/:id/days/:day/hours", middleware.RoleAuth("owner", "manager"), h.Template.SetOperatingHours)
			templates.PUT("/:id/days/:day/breaks", middleware.RoleAuth("owner", "manager"), h.Template.SetBreaks)
			templates.POST("/:id/slots/assign", middleware.RoleAuth("owner", "manager"), h.Template.AssignSlot)
			templates.POST("/:id/slots/unassign", middleware.RoleAuth("owner", "manager"), h.Template.UnassignSlot)
			templates.GET("/:id/export/xlsx", h.Export.ExportSchedule)
			templates.GET("/:id/export/ics", h.Export.ExportScheduleICS)
		}

		// 근로계약 모듈 (단건)
		contracts := v1.Group("/contracts")
		{
			contracts.GET("/:id", h.Contract.GetContract)
			contracts.PUT("/:id", middleware.RoleAuth("owner", "manager"), h.Contract.UpdateContract)
			contracts.DELETE("/:id", middleware.RoleAuth("owner", "manager"), h.Contract.DeleteContract)
			contracts.GET("/:id/export", middleware.RoleAuth("owner", "manager"), h.Export.ExportContract)
		}
	}

	return r
}
