package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	// Nossos pacotes de infraestrutura e utilitários
	"gopets/config"
	"gopets/internal/pkg/cache"
	"gopets/internal/pkg/database"
	"gopets/internal/pkg/logger"
	"gopets/internal/pkg/middleware"
	"gopets/internal/pkg/storage"
	"gopets/internal/pkg/token"
	"gopets/internal/seed"

	// Camadas para Injeção de Dependências
	"gopets/internal/api/adoption"
	"gopets/internal/api/auth"
	"gopets/internal/api/health"
	"gopets/internal/api/pet"
	"gopets/internal/api/router"
	"gopets/internal/api/upload"
	"gopets/internal/api/user"
	"gopets/internal/repository/adoptionrepo"
	"gopets/internal/repository/petrepo"
	"gopets/internal/repository/userrepo"
	"gopets/internal/service/adoptionservice"
	"gopets/internal/service/petservice"
	"gopets/internal/service/userservice"
)

// @title           GoPets API
// @version         1.0
// @description     API de adoção de pets: cadastro de pets, usuários, autenticação e solicitações de adoção.
// @BasePath        /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	// 1. Configuração e Inicialização
	log.Println("⚡ Inicializando serviço GoPets...")
	if err := godotenv.Load(); err != nil {
		// Sem .env seguimos apenas com o ambiente do sistema (ex: Docker).
		log.Println("⚠️ Aviso: Arquivo .env não encontrado ou erro de leitura. Carregando configs apenas do ambiente do sistema.")
	}

	cfg := config.LoadConfig()
	appLog := logger.NewLogger(cfg.LogLevel)
	defer func() { _ = appLog.Sync() }()
	appLog.Info("Configurações carregadas.", map[string]interface{}{"env": cfg.Environment})

	ctx := context.Background()

	// 2. Conexão com Recursos de Infraestrutura

	// A. Banco de Dados (PostgreSQL)
	db, err := database.NewPostgresDB(ctx, cfg.DatabaseURL)
	if err != nil {
		appLog.Fatal("Falha ao conectar ao banco de dados.", err)
	}
	defer db.Close()
	appLog.Info("Conexão PostgreSQL estabelecida.", nil)

	if cfg.AutoMigrate {
		if err := database.Migrate(ctx, db); err != nil {
			appLog.Fatal("Falha ao aplicar migrações.", err)
		}
		appLog.Info("Migrações aplicadas.", nil)
	}

	// B. Cache (Redis). Sem REDIS_ADDR o cache é desativado e o rate limit fica em memória.
	var cacheClient cache.Client = cache.NopClient{}
	var rateLimit func(http.Handler) http.Handler
	if cfg.RedisAddr != "" {
		redisClient, err := cache.NewRedisClient(ctx, cfg.RedisAddr)
		if err != nil {
			appLog.Fatal("Falha ao conectar ao Redis.", err)
		}
		defer redisClient.Close()
		cacheClient = redisClient
		rateLimit = middleware.RateLimiter(redisClient, cfg.RateLimitMaxRequests, cfg.RateLimitPeriod, appLog)
		appLog.Info("Conexão Redis estabelecida.", map[string]interface{}{"addr": cfg.RedisAddr})
	} else {
		rateLimit = middleware.NewLocalRateLimiter(cfg.RateLimitMaxRequests, cfg.RateLimitPeriod).Middleware
		appLog.Warn("REDIS_ADDR não definido: cache desativado e rate limit local.", nil)
	}

	// C. Armazenamento das fotos
	files, err := storage.NewLocalStorage(cfg.UploadDir)
	if err != nil {
		appLog.Fatal("Falha ao preparar diretório de uploads.", err)
	}

	// D. Serviço de Tokens (JWT)
	tokenSvc := token.NewService(cfg.JWTSecretKey, cfg.TokenExpiry)
	appLog.Debug("Serviço de Tokens JWT inicializado.", nil)

	// 3. INJEÇÃO DE DEPENDÊNCIAS
	// Ordem: Repository -> Service -> Handler
	petRepo := petrepo.NewPetRepository(db, cfg.DBTimeout, cacheClient, cfg.CacheTTL, appLog)
	userRepo := userrepo.NewUserRepository(db, cfg.DBTimeout, appLog)
	adoptionRepo := adoptionrepo.NewAdoptionRequestRepository(db, cfg.DBTimeout, appLog)
	appLog.Debug("Repositórios inicializados.", nil)

	petSvc := petservice.NewService(petRepo, files, cfg.MaxUploadBytes, appLog)
	userSvc := userservice.NewService(userRepo, tokenSvc, appLog)
	adoptionSvc := adoptionservice.NewService(adoptionRepo, petRepo, userRepo, appLog)
	appLog.Debug("Serviços inicializados.", nil)

	handlers := router.Handlers{
		Health:   health.NewHandler(db, appLog),
		Pet:      pet.NewHandler(petSvc, appLog),
		Upload:   upload.NewHandler(petSvc, files, cfg.MaxUploadBytes, appLog),
		User:     user.NewHandler(userSvc, appLog),
		Auth:     auth.NewHandler(userSvc, appLog),
		Adoption: adoption.NewHandler(adoptionSvc, appLog),
	}
	appLog.Debug("Handlers inicializados.", nil)

	if cfg.SeedDemoData {
		if err := seed.Run(ctx, petRepo, userRepo, appLog); err != nil {
			appLog.Error("Falha na carga de dados de demonstração.", err)
		}
	}

	// 4. Configuração e Início do Roteador/Servidor
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router.NewRouter(handlers, tokenSvc, rateLimit),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// 5. Execução e Graceful Shutdown
	go func() {
		appLog.Info("Servidor GoPets ouvindo na porta", map[string]interface{}{"port": cfg.Port})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLog.Fatal("Servidor falhou.", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	appLog.Info("Sinal de encerramento recebido. Desligando servidor...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLog.Error("Desligamento do servidor forçado.", err)
	}

	appLog.Info("Servidor encerrado com sucesso.", nil)
}
