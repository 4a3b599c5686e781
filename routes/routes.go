package routes

import (
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"go-ayuda/allocation"
	"go-ayuda/db"
	"go-ayuda/handlers"
	"go-ayuda/mlmodel"
	"go-ayuda/sms"
)

// Deps carries everything the handlers need; SetupRouter injects them via
// closures so the handler functions stay plain and testable.
type Deps struct {
	Store     *db.Store
	Model     *mlmodel.Handle
	Resolver  *allocation.Resolver
	Generator *sms.Generator
}

func SetupRouter(deps Deps) *gin.Engine {
	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	if origin := os.Getenv("CLIENT_URL"); origin != "" {
		corsConfig.AllowOrigins = []string{origin}
	} else {
		corsConfig.AllowAllOrigins = true
	}
	r.Use(cors.New(corsConfig))

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "BantayAyuda allocation API",
		})
	})

	api := r.Group("/api/ayuda")
	{
		api.GET("/households", func(c *gin.Context) { handlers.ListHouseholds(c, deps.Store) })
		api.POST("/households", func(c *gin.Context) { handlers.CreateHousehold(c, deps.Store) })
		api.GET("/households/geojson", func(c *gin.Context) { handlers.HouseholdGeoJSON(c, deps.Store) })
		api.GET("/households/:id", func(c *gin.Context) { handlers.GetHousehold(c, deps.Store) })
		api.PUT("/households/:id", func(c *gin.Context) { handlers.UpdateHousehold(c, deps.Store) })
		api.DELETE("/households/:id", func(c *gin.Context) { handlers.DeleteHousehold(c, deps.Store) })

		api.GET("/disasters", func(c *gin.Context) { handlers.ListDisasters(c, deps.Store) })
		api.POST("/disasters", func(c *gin.Context) { handlers.CreateDisaster(c, deps.Store) })
		api.GET("/disasters/:id", func(c *gin.Context) { handlers.GetDisaster(c, deps.Store) })

		api.GET("/assessments", func(c *gin.Context) { handlers.ListAssessments(c, deps.Store) })
		api.POST("/assessments", func(c *gin.Context) { handlers.SaveAssessment(c, deps.Store) })

		api.GET("/ml/predict", func(c *gin.Context) { handlers.MLPredict(c, deps.Store, deps.Resolver, deps.Generator) })
		api.GET("/ml/validate", func(c *gin.Context) { handlers.ValidateModel(c, deps.Store, deps.Model) })
		api.POST("/generate-sms", func(c *gin.Context) { handlers.GenerateSMS(c, deps.Generator) })

		api.GET("/budget/summary", func(c *gin.Context) { handlers.BudgetSummary(c, deps.Store) })
		api.GET("/export/csv", func(c *gin.Context) { handlers.ExportCSV(c, deps.Store) })
		api.GET("/export/xlsx", func(c *gin.Context) { handlers.ExportXLSX(c, deps.Store) })
	}

	return r
}
