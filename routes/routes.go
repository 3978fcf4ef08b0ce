package routes

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/ashishk-dev/renteasy-backend/config"
	"github.com/ashishk-dev/renteasy-backend/controllers"
	"github.com/ashishk-dev/renteasy-backend/repositories"
	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"
)

func Routes(router *mux.Router, redisClient *redis.Client, media controllers.MediaUploader) {
	owners := repositories.NewOwnerRepository(config.OwnerCollection)
	users := repositories.NewUserRepository(config.UserCollection)
	properties := repositories.NewPropertyRepository(config.PropertyCollection)

	var cache controllers.ListingCache
	if redisClient != nil {
		cache = config.NewListingCache(redisClient)
	}

	// Auth routes
	router.HandleFunc("/api/owner/signup", controllers.OwnerSignup(owners)).Methods("POST")
	router.HandleFunc("/api/owner/login", controllers.OwnerLogin(owners)).Methods("POST")
	router.HandleFunc("/api/user/signup", controllers.UserSignup(users)).Methods("POST")
	router.HandleFunc("/api/user/login", controllers.UserLogin(users)).Methods("POST")

	// Property routes — intentionally unauthenticated
	router.HandleFunc("/api/upload", controllers.UploadProperty(properties, media, cache)).Methods("POST")
	router.HandleFunc("/api/houses", controllers.GetHouses(properties, cache)).Methods("GET")
	router.HandleFunc("/api/property/{id}", controllers.DeleteProperty(properties, cache)).Methods("DELETE")

	// Single-page-app fallback for everything else
	spa := spaHandler{staticPath: "public", indexPath: "index.html"}
	router.PathPrefix("/").Handler(spa).Methods("GET")
}

// spaHandler serves files from staticPath and falls back to the index
// document for paths that don't map to a file on disk.
type spaHandler struct {
	staticPath string
	indexPath  string
}

func (h spaHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := filepath.Join(h.staticPath, filepath.Clean(r.URL.Path))

	fi, err := os.Stat(path)
	if os.IsNotExist(err) || (err == nil && fi.IsDir()) {
		http.ServeFile(w, r, filepath.Join(h.staticPath, h.indexPath))
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	http.FileServer(http.Dir(h.staticPath)).ServeHTTP(w, r)
}
