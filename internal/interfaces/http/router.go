package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-api/internal/application/auth"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.UseCase
	UserUC        *usecase.UserUseCase
	CategoryUC    *usecase.CategoryUseCase
	SubcategoryUC *usecase.SubcategoryUseCase
	ProductUC     *usecase.ProductUseCase
	JWTSecret     string
}

// Router registra las rutas de la API. El gate de rol por ruta es pertenencia
// simple: admin NO hereda rutas solo-coordinador ni al revés.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren credencial)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	anyRole := []string{entity.RoleAdmin, entity.RoleCoordinador, entity.RoleAuxiliar}
	managers := []string{entity.RoleAdmin, entity.RoleCoordinador}

	// Users (directorio; reglas de alcance finas en el use case)
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/me", RequireRole(anyRole...), userHandler.Me)
	users.Get("/", RequireRole(managers...), userHandler.List)
	users.Post("/", RequireRole(entity.RoleAdmin), userHandler.Create)
	users.Get("/:id", RequireRole(anyRole...), userHandler.GetByID)
	users.Put("/:id", RequireRole(anyRole...), userHandler.Update)
	users.Patch("/:id/deactivate", RequireRole(entity.RoleAdmin), userHandler.Deactivate)
	users.Patch("/:id/reactivate", RequireRole(entity.RoleAdmin), userHandler.Reactivate)
	users.Delete("/:id", RequireRole(entity.RoleAdmin), userHandler.Delete)

	// Categories
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", RequireRole(anyRole...), categoryHandler.List)
	categories.Post("/", RequireRole(managers...), categoryHandler.Create)
	categories.Get("/:id", RequireRole(anyRole...), categoryHandler.GetByID)
	categories.Get("/:id/subcategories", RequireRole(anyRole...), categoryHandler.Subcategories)
	categories.Put("/:id", RequireRole(managers...), categoryHandler.Update)
	categories.Patch("/:id/deactivate", RequireRole(managers...), categoryHandler.Deactivate)
	categories.Patch("/:id/reactivate", RequireRole(managers...), categoryHandler.Reactivate)
	categories.Delete("/:id", RequireRole(entity.RoleAdmin), categoryHandler.Delete)

	// Subcategories
	subcategories := protected.Group("/subcategories")
	subcategoryHandler := NewSubcategoryHandler(deps.SubcategoryUC)
	subcategories.Get("/", RequireRole(anyRole...), subcategoryHandler.List)
	subcategories.Post("/", RequireRole(managers...), subcategoryHandler.Create)
	subcategories.Get("/:id", RequireRole(anyRole...), subcategoryHandler.GetByID)
	subcategories.Put("/:id", RequireRole(managers...), subcategoryHandler.Update)
	subcategories.Patch("/:id/deactivate", RequireRole(managers...), subcategoryHandler.Deactivate)
	subcategories.Patch("/:id/reactivate", RequireRole(managers...), subcategoryHandler.Reactivate)
	subcategories.Delete("/:id", RequireRole(entity.RoleAdmin), subcategoryHandler.Delete)

	// Products
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", RequireRole(anyRole...), productHandler.List)
	products.Post("/", RequireRole(managers...), productHandler.Create)
	products.Get("/:id", RequireRole(anyRole...), productHandler.GetByID)
	products.Put("/:id", RequireRole(managers...), productHandler.Update)
	products.Patch("/:id/deactivate", RequireRole(managers...), productHandler.Deactivate)
	products.Patch("/:id/reactivate", RequireRole(managers...), productHandler.Reactivate)
	products.Delete("/:id", RequireRole(entity.RoleAdmin), productHandler.Delete)
}
