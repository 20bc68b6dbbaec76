package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/ChitkulLakshya/PackPal/db"
	"github.com/ChitkulLakshya/PackPal/model"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

func HandleRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}

	var request registerRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		log.Println("Error while decoding JSON: ", err)
		http.Error(w, "Wrong data provided", http.StatusBadRequest)
		return
	}
	defer func() {
		err = r.Body.Close()
		if err != nil {
			log.Println("Error closing request body:", err)
		}
	}()

	// check non-empty fields
	if request.Name == "" || request.Email == "" || request.Password == "" {
		log.Println("Missing required fields")
		http.Error(w, "Name, email and password are required", http.StatusBadRequest)
		return
	}
	if !strings.Contains(request.Email, "@") {
		log.Println("Invalid email")
		http.Error(w, "Invalid email", http.StatusBadRequest)
		return
	}

	userDAO := db.NewUserDAO(db.GetDB())

	// check email not taken
	_, err = userDAO.GetUserByEmail(request.Email)
	if err == nil {
		log.Println("Email already registered")
		http.Error(w, "Email already registered", http.StatusConflict)
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Println("Error while interacting with the database: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Println("Error hashing password: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	user := model.User{
		Name:         request.Name,
		Email:        request.Email,
		PasswordHash: string(hash),
	}
	user, err = userDAO.AddUser(user)
	if err != nil {
		log.Println("Error while interacting with the database: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	// send response
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(user)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding", http.StatusInternalServerError)
		return
	}
}

func HandleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}

	var request loginRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		log.Println("Error while decoding JSON: ", err)
		http.Error(w, "Wrong data provided", http.StatusBadRequest)
		return
	}
	defer func() {
		err = r.Body.Close()
		if err != nil {
			log.Println("Error closing request body:", err)
		}
	}()

	if request.Email == "" || request.Password == "" {
		log.Println("Missing required fields")
		http.Error(w, "Email and password are required", http.StatusBadRequest)
		return
	}

	userDAO := db.NewUserDAO(db.GetDB())

	user, err := userDAO.GetUserByEmail(request.Email)
	if err != nil {
		log.Println("User not found: ", err)
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(request.Password))
	if err != nil {
		log.Println("Wrong password")
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	token, err := generateToken(user.UserID)
	if err != nil {
		log.Println("Error generating token: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(loginResponse{Token: token, User: user})
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding", http.StatusInternalServerError)
		return
	}
}

func HandleUsers(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		getCurrentUser(w, r)
	default:
		log.Println("HandleUsers received an unsupported method")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
	}
}

func getCurrentUser(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}

	userID, err := authenticateRequest(r)
	if err != nil {
		log.Println("Authentication failed: ", err)
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	userDAO := db.NewUserDAO(db.GetDB())

	user, err := userDAO.GetUserById(userID)
	if err != nil {
		log.Println("User not found: ", err)
		http.Error(w, "User could not be found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(user)
	if err != nil {
		log.Println(err)
		http.Error(w, "Error encoding", http.StatusInternalServerError)
		return
	}
}
