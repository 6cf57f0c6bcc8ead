package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/profissionais-api/internal/audit"
	"github.com/BruksfildServices01/profissionais-api/internal/auth"
	"github.com/BruksfildServices01/profissionais-api/internal/cache"
	"github.com/BruksfildServices01/profissionais-api/internal/config"
	"github.com/BruksfildServices01/profissionais-api/internal/handlers"
	infraRepo "github.com/BruksfildServices01/profissionais-api/internal/infra/repository"
	"github.com/BruksfildServices01/profissionais-api/internal/middleware"
	"github.com/BruksfildServices01/profissionais-api/internal/models"
	"github.com/BruksfildServices01/profissionais-api/internal/storage"
	"github.com/BruksfildServices01/profissionais-api/internal/timezone"
	ucAvaliacao "github.com/BruksfildServices01/profissionais-api/internal/usecase/avaliacao"
	ucLocalidade "github.com/BruksfildServices01/profissionais-api/internal/usecase/localidade"
	ucProfissional "github.com/BruksfildServices01/profissionais-api/internal/usecase/profissional"
	ucServico "github.com/BruksfildServices01/profissionais-api/internal/usecase/servico"
	ucUsuario "github.com/BruksfildServices01/profissionais-api/internal/usecase/usuario"
	"github.com/BruksfildServices01/profissionais-api/internal/validators"
)

// Deps são os singletons montados no main.
type Deps struct {
	DB      *gorm.DB
	Config  *config.Config
	Issuer  *auth.Issuer
	Revoker auth.Revoker
	Cache   cache.Store
	Images  storage.ImageStore
	Audit   *audit.Dispatcher
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	cfg := d.Config

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	usuarioRepo := infraRepo.NewUsuarioGormRepository(d.DB)
	profissionalRepo := infraRepo.NewProfissionalGormRepository(d.DB)
	servicoRepo := infraRepo.NewServicoGormRepository(d.DB)
	avaliacaoRepo := infraRepo.NewAvaliacaoGormRepository(d.DB)
	localidadeRepo := infraRepo.NewLocalidadeGormRepository(d.DB)

	checkDomain := validators.EmailDomainChecker(validators.AcceptAnyDomain)
	if cfg.EmailDomainCheck {
		checkDomain = validators.IsEmailDomainValid
	}

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	localidadeSvc := ucLocalidade.NewService(localidadeRepo, d.Cache, cfg.CacheTTL, d.Audit)

	registerClienteUC := ucUsuario.NewRegisterCliente(usuarioRepo, d.Audit, checkDomain)
	registerProfissionalUC := ucUsuario.NewRegisterProfissional(usuarioRepo, d.Audit, checkDomain)
	loginUC := ucUsuario.NewLogin(usuarioRepo, d.Issuer, d.Audit)
	logoutUC := ucUsuario.NewLogout(d.Revoker, d.Audit)

	getPerfilUC := ucUsuario.NewGetPerfil(usuarioRepo)
	updatePerfilUC := ucUsuario.NewUpdatePerfil(usuarioRepo, d.Audit, checkDomain)
	updatePerfilProfissionalUC := ucUsuario.NewUpdatePerfilProfissional(usuarioRepo, d.Audit)
	imagemUC := ucUsuario.NewUpdateImagem(usuarioRepo, d.Images, d.Audit, cfg.ImageMaxSide)
	imagemProfissionalUC := ucUsuario.NewUpdateImagemProfissional(usuarioRepo, d.Images, d.Audit, cfg.ImageMaxSide)
	deleteContaUC := ucUsuario.NewDeleteConta(usuarioRepo, d.Revoker, d.Images, d.Audit)

	listProfissionaisUC := ucProfissional.NewListProfissionais(profissionalRepo)
	detalhesUC := ucProfissional.NewGetDetalhes(profissionalRepo)
	linkAgendamentoUC := ucProfissional.NewLinkAgendamento(profissionalRepo)

	agendarUC := ucServico.NewAgendar(servicoRepo, d.Audit)
	listarServicosUC := ucServico.NewListar(servicoRepo)
	realizarUC := ucServico.NewRealizar(servicoRepo, d.Audit)
	cancelarUC := ucServico.NewCancelar(servicoRepo, d.Audit)

	avaliarUC := ucAvaliacao.NewAvaliar(avaliacaoRepo, d.Audit)
	excluirAvaliacaoUC := ucAvaliacao.NewExcluirAvaliacao(avaliacaoRepo, d.Audit)
	comentarUC := ucAvaliacao.NewAdicionarComentario(avaliacaoRepo, d.Audit)
	excluirComentarioUC := ucAvaliacao.NewExcluirComentario(avaliacaoRepo, d.Audit)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(registerClienteUC, registerProfissionalUC, loginUC, logoutUC)
	meHandler := handlers.NewMeHandler(
		getPerfilUC,
		updatePerfilUC,
		updatePerfilProfissionalUC,
		imagemUC,
		imagemProfissionalUC,
		deleteContaUC,
	)
	localidadeHandler := handlers.NewLocalidadeHandler(localidadeSvc)
	profissionalHandler := handlers.NewProfissionalHandler(
		listProfissionaisUC,
		detalhesUC,
		linkAgendamentoUC,
		localidadeSvc,
	)
	servicoHandler := handlers.NewServicoHandler(
		agendarUC,
		listarServicosUC,
		realizarUC,
		cancelarUC,
		timezone.Location(cfg.Timezone),
	)
	avaliacaoHandler := handlers.NewAvaliacaoHandler(avaliarUC, excluirAvaliacaoUC, comentarUC, excluirComentarioUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(d.DB)

	// ======================================================
	// ❤️ HEALTH
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ======================================================
	// 🖼️ MÍDIA LOCAL (sem S3)
	// ======================================================
	if !cfg.S3Enabled() {
		r.Static(cfg.MediaURL, cfg.MediaRoot)
	}

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 PÚBLICO
		// ------------------------------
		api.GET("/estados", localidadeHandler.Estados)
		api.GET("/cidades", localidadeHandler.Cidades)
		api.GET("/especialidades", localidadeHandler.Especialidades)

		api.GET("/profissionais", profissionalHandler.List)
		api.GET("/profissionais/:id/agendar", profissionalHandler.LinkAgendamento)

		api.GET("/usuario/tipo", authHandler.TiposUsuario)

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/cadastro/cliente", authHandler.RegisterCliente)
		api.POST("/cadastro/profissional", authHandler.RegisterProfissional)
		api.POST("/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(d.Issuer, d.Revoker))
		{
			secured.POST("/logout", authHandler.Logout)

			secured.GET("/perfil", meHandler.GetMe)
			secured.PATCH("/perfil", meHandler.Update)
			secured.DELETE("/perfil", meHandler.Delete)
			secured.PATCH("/perfil/profissional", meHandler.UpdateProfissional)
			secured.PUT("/perfil/imagem", meHandler.UpdateImagem)
			secured.PUT("/perfil/profissional/imagem", meHandler.UpdateImagemProfissional)

			secured.GET("/profissionais/:id", profissionalHandler.Detalhes)

			// ------------------------------
			// SERVIÇOS
			// ------------------------------
			secured.POST("/profissionais/:id/servicos", servicoHandler.Agendar)
			secured.GET("/servicos", servicoHandler.List)
			secured.PATCH("/servicos/:id/realizar", servicoHandler.Realizar)
			secured.PATCH("/servicos/:id/cancelar", servicoHandler.Cancelar)

			// ------------------------------
			// AVALIAÇÕES
			// ------------------------------
			secured.POST("/profissionais/:id/avaliar", avaliacaoHandler.Avaliar)
			secured.DELETE("/avaliacoes/:id", avaliacaoHandler.Excluir)
			secured.POST("/avaliacoes/:id/comentarios", avaliacaoHandler.Comentar)
			secured.DELETE("/comentarios/:id", avaliacaoHandler.ExcluirComentario)

			// ------------------------------
			// 🛠️ ADMIN
			// ------------------------------
			admin := secured.Group("/admin")
			admin.Use(middleware.RequireRole(models.RoleAdmin))
			{
				admin.POST("/estados", localidadeHandler.CreateEstado)
				admin.DELETE("/estados/:id", localidadeHandler.DeleteEstado)
				admin.POST("/cidades", localidadeHandler.CreateCidade)
				admin.DELETE("/cidades/:id", localidadeHandler.DeleteCidade)
				admin.POST("/especialidades", localidadeHandler.CreateEspecialidade)
				admin.DELETE("/especialidades/:id", localidadeHandler.DeleteEspecialidade)

				admin.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
