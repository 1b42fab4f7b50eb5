package controllers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/google/uuid"

	"github.com/nashaat90ahmed-commits/True-love-app-5/events"
	"github.com/nashaat90ahmed-commits/True-love-app-5/models"
	"github.com/nashaat90ahmed-commits/True-love-app-5/services"
)

// PostController handles HTTP requests for community posts
type PostController struct {
	Store      *services.DynamoService
	Dispatcher *events.Dispatcher
}

// NewPostController creates a new PostController instance
func NewPostController(store *services.DynamoService, dispatcher *events.Dispatcher) *PostController {
	return &PostController{Store: store, Dispatcher: dispatcher}
}

// HandleCreatePost stores a post and triggers moderation
func (pc *PostController) HandleCreatePost(w http.ResponseWriter, r *http.Request) {
	var request struct {
		AuthorID string `json:"authorId"`
		Content  string `json:"content"`
		ImageURL string `json:"imageUrl"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	if request.AuthorID == "" || (request.Content == "" && request.ImageURL == "") {
		http.Error(w, "AuthorId and content or imageUrl are required", http.StatusBadRequest)
		return
	}

	// Posts start unapproved; the moderation handler writes the verdict.
	post := models.Post{
		ID:        uuid.NewString(),
		AuthorID:  request.AuthorID,
		Content:   request.Content,
		ImageURL:  request.ImageURL,
		CreatedAt: time.Now().UTC(),
	}

	if err := pc.Store.PutItem(r.Context(), models.CommunityPostsTable, post); err != nil {
		log.Println("Error storing post:", err)
		http.Error(w, "Failed to create post", http.StatusInternalServerError)
		return
	}

	item, err := attributevalue.MarshalMap(post)
	if err != nil {
		log.Println("Error marshalling post event:", err)
		http.Error(w, "Failed to create post", http.StatusInternalServerError)
		return
	}
	pc.Dispatcher.EmitCreate(r.Context(), models.CommunityPostsTable, item)

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{"postId": post.ID})
}
