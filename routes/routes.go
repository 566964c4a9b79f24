package routes

import (
	"github.com/bashafinder/backend/controllers"
	"github.com/bashafinder/backend/geo"
	"github.com/bashafinder/backend/middleware"
	"github.com/bashafinder/backend/storage"
	"github.com/bashafinder/backend/store"
	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

func Routes(router *mux.Router, client *mongo.Client, redisClient *redis.Client, listings *store.Store, uploads *storage.Store) {
	catalog := geo.Default()

	// Auth routes
	router.HandleFunc("/register", controllers.RegisterUser(client)).Methods("POST")
	router.HandleFunc("/login", controllers.LoginUser(client)).Methods("POST")
	router.HandleFunc("/password-reset", controllers.RequestPasswordReset(client)).Methods("POST")

	// Guest browsing and static lookups need no session
	router.HandleFunc("/listings", controllers.BrowseListings(listings)).Methods("GET")
	router.HandleFunc("/listings/{id}", controllers.GetListing(listings)).Methods("GET")
	router.HandleFunc("/geo/divisions", controllers.GetDivisions(catalog)).Methods("GET")
	router.HandleFunc("/geo/districts", controllers.GetDistricts(catalog)).Methods("GET")
	router.HandleFunc("/geo/upazilas", controllers.GetUpazilas(catalog)).Methods("GET")
	router.HandleFunc("/geo/areas", controllers.GetAreas(catalog)).Methods("GET")

	// Routes that require authentication
	authenticated := router.PathPrefix("/api").Subrouter()
	authenticated.Use(middleware.AuthMiddleware)

	// Property routes
	authenticated.HandleFunc("/properties", controllers.CreateProperty(redisClient)).Methods("POST")
	authenticated.HandleFunc("/properties", controllers.GetAllProperties(redisClient)).Methods("GET")
	authenticated.HandleFunc("/properties/{id}", controllers.GetPropertyByID()).Methods("GET")
	authenticated.HandleFunc("/properties/{id}", controllers.UpdateProperty(redisClient)).Methods("PUT")
	authenticated.HandleFunc("/properties/{id}", controllers.DeleteProperty(redisClient)).Methods("DELETE")
	authenticated.HandleFunc("/listing-form/{type}", controllers.GetListingForm()).Methods("GET")

	// Favorites routes
	authenticated.HandleFunc("/favorites", controllers.GetFavorites(client)).Methods("GET")
	authenticated.HandleFunc("/favorites/{propertyID}", controllers.AddFavorite(client)).Methods("POST")
	authenticated.HandleFunc("/favorites/{propertyID}", controllers.DeleteFavorite(client)).Methods("DELETE")

	// Profile routes
	authenticated.HandleFunc("/me", controllers.GetProfile(client)).Methods("GET")
	authenticated.HandleFunc("/me", controllers.UpdateProfile(client)).Methods("PUT")

	// Chat routes
	authenticated.HandleFunc("/chats", controllers.CreateChat(client)).Methods("POST")
	authenticated.HandleFunc("/chats", controllers.GetChats(client)).Methods("GET")
	authenticated.HandleFunc("/chats/{id}/messages", controllers.GetMessages(client)).Methods("GET")
	authenticated.HandleFunc("/chats/{id}/messages", controllers.SendMessage(redisClient)).Methods("POST")
	authenticated.HandleFunc("/chats/{id}/read", controllers.MarkMessagesRead(client)).Methods("POST")
	authenticated.HandleFunc("/chats/{id}/stream", controllers.StreamChat(redisClient)).Methods("GET")

	// Place search and routing
	authenticated.HandleFunc("/places/search", controllers.SearchPlaces()).Methods("GET")
	authenticated.HandleFunc("/places/route", controllers.GetRoute()).Methods("GET")

	// Uploads
	authenticated.HandleFunc("/uploads/{bucket}", controllers.UploadFile(uploads)).Methods("POST")
}
