package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	domainrepo "ifind-attorney/internal/domain/repository"
	"ifind-attorney/internal/domain/service"
	"ifind-attorney/internal/handler"
	"ifind-attorney/internal/infrastructure/database"
	"ifind-attorney/internal/repository"
	"ifind-attorney/internal/usecase"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found, using system environment variables")
	}

	firmsRepo := buildFirmsRepository()
	log.Printf("firm directory loaded: %d firms across %d states", firmsRepo.TotalFirms(), len(firmsRepo.States()))

	matcherService := service.NewTieredMatcherService(firmsRepo)
	matchUseCase := usecase.NewLawyerMatchUseCase(matcherService)

	matchHandler := handler.NewLawyerMatchHandler(matchUseCase)
	geocodeHandler := handler.NewGeocodeHandler(service.NewGeocodeService())
	feesHandler := handler.NewFeesHandler(service.NewFeesService())
	directoryHandler := handler.NewDirectoryHandler(firmsRepo)

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Printf("panic recovered: %v", recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error": handler.InternalErrorMessage,
		})
	}))

	api := router.Group("/api")
	{
		api.POST("/lawyers/match", matchHandler.PostMatchLawyers)
		api.POST("/geocode/reverse", geocodeHandler.PostReverseGeocode)
		api.POST("/fees/estimate", feesHandler.PostFeeEstimate)
		api.GET("/health", directoryHandler.GetHealth)
		api.GET("/states", directoryHandler.GetStates)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	fmt.Printf("iFind Attorney server starting on :%s...\n", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

// buildFirmsRepository picks the directory source: Supabase when configured,
// then a direct Postgres connection, then the compiled-in seed table. A load
// failure never kills the service; it falls back to the seed table so the
// matcher's non-empty guarantee holds.
func buildFirmsRepository() domainrepo.FirmsRepository {
	if os.Getenv("SUPABASE_URL") != "" && os.Getenv("SUPABASE_ANON_KEY") != "" {
		client, err := database.NewSupabaseClient()
		if err == nil {
			repo, loadErr := repository.NewSupabaseFirmsRepository(client)
			if loadErr == nil {
				log.Printf("firm directory source: supabase")
				return repo
			}
			log.Printf("Warning: supabase directory load failed, falling back: %v", loadErr)
		} else {
			log.Printf("Warning: supabase client init failed, falling back: %v", err)
		}
	}

	if os.Getenv("DATABASE_URL") != "" {
		client, err := database.NewPostgreSQLClient()
		if err == nil {
			repo, loadErr := repository.NewPostgresFirmsRepository(context.Background(), client)
			if loadErr == nil {
				log.Printf("firm directory source: postgres")
				return repo
			}
			log.Printf("Warning: postgres directory load failed, falling back: %v", loadErr)
		} else {
			log.Printf("Warning: postgres client init failed, falling back: %v", err)
		}
	}

	log.Printf("firm directory source: built-in seed table")
	return repository.NewStaticFirmsRepository()
}
