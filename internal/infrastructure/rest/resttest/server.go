// Package resttest implementa en memoria la superficie REST que consume la
// consola (entidades de fábrica, usuarios y /auth/sync), sobre fiber. Es el
// backend de los tests de la capa de datos: mismo contrato de rutas, códigos
// y cuerpo de error {"detail": ...} que el servidor real.
package resttest

import (
	"net/http"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/jhoicas/factory-console/internal/domain/entity"
	"github.com/jhoicas/factory-console/internal/infrastructure/rest"
)

const testSecret = "resttest-secret"

// Server backend de fábrica en memoria.
type Server struct {
	app *fiber.App

	mu         sync.Mutex
	parts      map[string]entity.Part
	suppliers  map[string]entity.Supplier
	warehouses map[string]entity.Warehouse
	staff      map[string]entity.Staff
	inventory  map[entity.InventoryKey]entity.Inventory
	purchases  map[string]entity.Purchase
	users      map[string]entity.AppUser // por id

	// FailNext fuerza un error 500 en la próxima petición; para probar
	// pantallas en estado error.
	failNext bool
}

// New construye el servidor con almacenes vacíos y las rutas registradas.
func New() *Server {
	s := &Server{
		app:        fiber.New(fiber.Config{DisableStartupMessage: true, Immutable: true}),
		parts:      map[string]entity.Part{},
		suppliers:  map[string]entity.Supplier{},
		warehouses: map[string]entity.Warehouse{},
		staff:      map[string]entity.Staff{},
		inventory:  map[entity.InventoryKey]entity.Inventory{},
		purchases:  map[string]entity.Purchase{},
		users:      map[string]entity.AppUser{},
	}
	s.routes()
	return s
}

// App expone la aplicación fiber (para app.Test directo).
func (s *Server) App() *fiber.App { return s.app }

// FailNext hace fallar con 500 la siguiente petición que llegue.
func (s *Server) FailNext() {
	s.mu.Lock()
	s.failNext = true
	s.mu.Unlock()
}

// ── Puente hacia el cliente REST ──────────────────────────────────────────────

// transport http.RoundTripper que despacha contra la app fiber sin abrir
// sockets (app.Test).
type transport struct {
	app *fiber.App
}

func (t transport) RoundTrip(req *http.Request) (*http.Response, error) {
	return t.app.Test(req, -1)
}

// HTTPClient cliente net/http enchufado al servidor en memoria.
func (s *Server) HTTPClient() *http.Client {
	return &http.Client{Transport: transport{app: s.app}}
}

// RestClient cliente de la capa de datos apuntando al servidor en memoria.
func (s *Server) RestClient(tokens rest.TokenSource) *rest.Client {
	return rest.NewClient("http://factory.test", tokens, nil,
		rest.WithHTTPClient(s.HTTPClient()))
}

// ── Autenticación de prueba ───────────────────────────────────────────────────

// Token firma un JWT HS256 con la identidad dada, como los que emite el
// proveedor de identidad.
func (s *Server) Token(authUserID, email string) string {
	claims := jwt.MapClaims{"sub": authUserID, "email": email}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		panic("resttest: firmar token: " + err.Error())
	}
	return token
}

// StaticToken TokenSource fijo para los tests.
type StaticToken string

// AccessToken implementa rest.TokenSource.
func (t StaticToken) AccessToken() string { return string(t) }

// identity claims mínimos del token entrante.
type identity struct {
	Sub   string
	Email string
}

// requireAuth middleware: exige bearer token firmado con el secreto de test
// y deja la identidad en locals.
func (s *Server) requireAuth(c *fiber.Ctx) error {
	header := c.Get("Authorization")
	const prefix = "Bearer "
	if len(header) <= len(prefix) || header[:len(prefix)] != prefix {
		return detail(c, fiber.StatusUnauthorized, "Not authenticated")
	}
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(header[len(prefix):], claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	if err != nil {
		return detail(c, fiber.StatusUnauthorized, "Invalid token")
	}
	sub, _ := claims["sub"].(string)
	email, _ := claims["email"].(string)
	c.Locals("identity", identity{Sub: sub, Email: email})
	return c.Next()
}

// failGate corta con 500 si FailNext fue pedido.
func (s *Server) failGate(c *fiber.Ctx) error {
	s.mu.Lock()
	shouldFail := s.failNext
	s.failNext = false
	s.mu.Unlock()
	if shouldFail {
		return detail(c, fiber.StatusInternalServerError, "Internal error (forced)")
	}
	return c.Next()
}

// detail responde el cuerpo de error {"detail": ...} del backend real.
func detail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"detail": message})
}

// routes registra la superficie consumida por la consola.
func (s *Server) routes() {
	s.app.Use(s.failGate)

	authGroup := s.app.Group("/auth", s.requireAuth)
	authGroup.Get("/sync", s.syncUser)

	factory := s.app.Group("/factory", s.requireAuth)

	factory.Get("/parts", s.listParts)
	factory.Post("/parts", s.createPart)
	factory.Put("/parts/:part_id", s.updatePart)
	factory.Delete("/parts/:part_id", s.deletePart)

	factory.Get("/suppliers", s.listSuppliers)
	factory.Post("/suppliers", s.createSupplier)
	factory.Put("/suppliers/:supplier_id", s.updateSupplier)
	factory.Delete("/suppliers/:supplier_id", s.deleteSupplier)

	factory.Get("/warehouses", s.listWarehouses)
	factory.Post("/warehouses", s.createWarehouse)
	factory.Put("/warehouses/:warehouse_id", s.updateWarehouse)
	factory.Delete("/warehouses/:warehouse_id", s.deleteWarehouse)

	factory.Get("/staff", s.listStaff)
	factory.Post("/staff", s.createStaff)
	factory.Put("/staff/:staff_id", s.updateStaff)
	factory.Delete("/staff/:staff_id", s.deleteStaff)

	factory.Get("/inventory", s.listInventory)
	factory.Post("/inventory", s.createInventory)
	factory.Put("/inventory/:warehouse_id/:part_id", s.updateInventory)
	factory.Delete("/inventory/:warehouse_id/:part_id", s.deleteInventory)

	factory.Get("/purchases", s.listPurchases)
	factory.Post("/purchases", s.createPurchase)
	factory.Put("/purchases/:purchase_id", s.updatePurchase)
	factory.Delete("/purchases/:purchase_id", s.deletePurchase)

	users := s.app.Group("/users", s.requireAuth)
	users.Get("/", s.listUsers)
	users.Put("/:id", s.updateUser)
}
