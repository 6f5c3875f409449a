package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ebdapp/cadastro/internal/app/controllers"
	"github.com/ebdapp/cadastro/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	pessoaController *controllers.PessoaController,
	reportController *controllers.ReportController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// Entry point redirects to the login page
	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/login")
	})

	// --- Public routes ---
	router.GET("/login", authController.LoginPage)
	router.POST("/login", authController.Login)
	router.GET("/registrar", authController.RegisterPage)
	router.POST("/registrar", authController.Register)

	// --- Protected routes ---
	protected := router.Group("")
	protected.Use(authMiddleware.RequireAuth())
	{
		protected.GET("/logout", authController.Logout)

		protected.GET("/cadastro", pessoaController.CadastroPage)
		protected.POST("/cadastro", pessoaController.Cadastro)
		protected.GET("/visualizar", pessoaController.Visualizar)
		protected.GET("/editar/:id", pessoaController.EditarPage)
		protected.POST("/editar/:id", pessoaController.Editar)
		protected.GET("/excluir/:id", pessoaController.Excluir)

		protected.GET("/relatorios", reportController.Relatorios)
		protected.GET("/relatorio-por-classe", reportController.PorClasse)
		protected.GET("/relatorio-todos-alunos", reportController.TodosAlunos)
		protected.GET("/relatorio-aniversariantes", reportController.Aniversariantes)
		protected.GET("/relatorio-por-tempo", reportController.PorTempo)
		protected.GET("/graficos", reportController.Graficos)
	}
}
