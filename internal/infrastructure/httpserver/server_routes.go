package httpserver

func (s *Server) setupRoutes() {
	s.echo.GET("/health", s.healthCheck)
	s.echo.GET("/metrics", s.metricsEndpoint)

	recipes := s.echo.Group("/recipes")
	recipes.GET("", s.listRecipes)
	recipes.POST("", s.createRecipe)
	recipes.GET("/:id", s.getRecipe)
	recipes.PUT("/:id", s.updateRecipe)
	recipes.DELETE("/:id", s.deleteRecipe)
}
