package api

import (
	"database/sql"
	"fmt"

	"traderace/internal/app"
	"traderace/internal/repository"
	"traderace/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type ApiHandler struct {
	Db                    *sql.DB
	AgentRunner           *app.AgentRunner
	AgentRepository       repository.AgentRepository
	DecisionLogRepository repository.DecisionLogRepository
	PortfolioService      service.PortfolioService
	EquityService         service.EquityService
	IngestionService      service.IngestionService
}

func (m ApiHandler) StartApi(port int) error {
	router := gin.Default()
	router.Use(cors.Default())

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to traderace"})
	})
	router.GET("/agents", m.listAgents)
	router.GET("/portfolio", m.getPortfolio)
	router.GET("/equityCurve", m.getEquityCurve)
	router.GET("/performance", m.getPerformance)
	router.GET("/decisions", m.listDecisions)
	router.POST("/runCycle", m.runCycle)
	router.POST("/ingestCandles", m.ingestCandles)

	return router.Run(fmt.Sprintf(":%d", port))
}

func returnErrorJson(err error, c *gin.Context) {
	fmt.Println(err.Error())
	c.AbortWithStatusJSON(500, gin.H{
		"error": err.Error(),
	})
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	fmt.Println(err.Error())
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}
