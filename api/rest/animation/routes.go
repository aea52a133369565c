package animation

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// methods refused outright; OPTIONS is registered behind cors for preflights
var disallowedMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodConnect,
	http.MethodTrace,
}

// registers animation generation routes. cors wraps POST and the preflight only,
// so every other method is answered with 405 whatever its origin
func RegisterRoutes(router *gin.RouterGroup, generator Generator, cors ...gin.HandlerFunc) {
	router.POST("/generateAnimation", withMiddleware(cors, Handler(generator))...)
	router.OPTIONS("/generateAnimation", withMiddleware(cors, MethodNotAllowedHandler)...)

	for _, method := range disallowedMethods {
		router.Handle(method, "/generateAnimation", MethodNotAllowedHandler)
	}
}

func withMiddleware(middleware []gin.HandlerFunc, handler gin.HandlerFunc) []gin.HandlerFunc {
	chain := make([]gin.HandlerFunc, 0, len(middleware)+1)
	chain = append(chain, middleware...)

	return append(chain, handler)
}
