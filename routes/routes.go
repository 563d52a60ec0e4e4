package routes

import (
	"github.com/edulizanay/voice-food-logger/controllers"
	"github.com/edulizanay/voice-food-logger/middlewares"
	"github.com/edulizanay/voice-food-logger/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter(lc *controllers.LogController, rc *controllers.RealtimeController, log *utils.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestLogger(log))
	r.Use(cors.Default())
	r.MaxMultipartMemory = controllers.MaxAudioBytes

	r.GET("/health", lc.Health)

	r.POST("/upload_audio", lc.UploadAudio)
	r.POST("/log_text", lc.LogText)

	r.GET("/entries", lc.TodayEntries)
	r.GET("/entries/:date", lc.EntriesByDate)
	r.GET("/progress", lc.Progress)
	r.GET("/insights/:date", lc.Insights)

	r.GET("/ws", rc.UpdatesWS)

	return r
}
