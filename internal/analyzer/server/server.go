package server

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"

	"driftAnalyzer/internal/actualizer"
	api "driftAnalyzer/internal/api/app"
	"driftAnalyzer/internal/configuration"
	"driftAnalyzer/internal/handlers"

	mongo "driftAnalyzer/internal/repository/mongo_integrations"

	// inmemoryrepository "driftAnalyzer/internal/repository/inmemory_repository"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-openapi/runtime/middleware"
	gorilla_handlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

type Server struct {
	Ctx    context.Context
	Server *http.Server
	Config *configuration.Configurator
}

func NewServer(ctx context.Context, config string) *Server {
	c := configuration.NewConfigurator(ctx, config)
	c.Run()
	return &Server{
		Ctx:    ctx,
		Config: c,
	}
}

func (s *Server) Run() error {
	var err error
	log.Println("Start web server...")
	var port = flag.Int("port", 8080, "Port for test HTTP server")
	flag.Parse()

	validateApiSpec("./openapi/api.yaml")

	data, err := mongo.NewMongoClient(s.Ctx)
	if err != nil {
		return err
	}

	a := actualizer.NewActualizer(data)
	a.Run(s.Ctx)

	// data := inmemoryrepository.NewInmemoryRepository()
	analyzer := api.NewApi(data, s.Config)

	var sh http.Handler = middleware.SwaggerUI(middleware.SwaggerUIOpts{
		SpecURL: "./static/api.yaml",
		Path:    "/swagger",
	}, nil)

	r := mux.NewRouter()
	api.HandlerFromMux(analyzer, r)
	r.HandleFunc("/health", handlers.HealthCheckHandler).Methods("GET")
	r.Handle("/swagger", sh).Methods("GET")
	r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.Dir("./openapi"))))

	loggedRouter := gorilla_handlers.LoggingHandler(os.Stdout, r)

	s.Server = &http.Server{
		Handler:     loggedRouter,
		Addr:        fmt.Sprintf("0.0.0.0:%d", *port),
		BaseContext: func(l net.Listener) context.Context { return s.Ctx },
	}

	go func() {
		err = s.Server.ListenAndServe()
		if err != nil {
			log.Fatal(err)
		}
	}()
	log.Println("Web server started!")
	return nil

}

// validateApiSpec checks the published OpenAPI document on startup so a
// broken spec surfaces in the logs instead of in the swagger UI.
func validateApiSpec(path string) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromFile(path)
	if err != nil {
		log.Printf("WARNING: unable to load api spec %s: %s", path, err)
		return
	}
	if err := doc.Validate(loader.Context); err != nil {
		log.Printf("WARNING: api spec %s is invalid: %s", path, err)
	}
}

func (s *Server) Stop() {
	s.Server.Shutdown(s.Ctx)
}
