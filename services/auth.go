package services

import (
	"errors"
	"log"
	"strings"

	jwt "snapill/config/jwt"
	"snapill/models"
	"snapill/store"
	"snapill/util"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

/*
* Check that email and password exist and are non-empty after trimming
* The trimmed values are written back into the input data
 */
func validateAuthInput(data map[string]interface{}) (string, string, error) {
	email, ok := data["email"].(string)
	if !ok || strings.TrimSpace(email) == "" {
		return "", "", errors.New(util.EMAIL_NOT_PROVIDED)
	}
	email = strings.TrimSpace(email)
	if !strings.Contains(email, "@") {
		return "", "", errors.New(util.INVALID_EMAIL)
	}

	password, ok := data["password"].(string)
	if !ok || strings.TrimSpace(password) == "" {
		return "", "", errors.New(util.PASSWORD_NOT_PROVIDED)
	}
	return email, strings.TrimSpace(password), nil
}

/*
* Check if length less than 7 return error
* Must have upperCase,number,special
* If any of them gives error return error
 */
func validatePasswordRules(password string) error {
	if len(password) < 7 {
		return errors.New("password must be at least 7 characters long")
	}

	hasUpper := false
	hasNumber := false
	hasSpecial := false

	specialChars := "!@#$%^&*()-_=+[]{}|;:',.<>?/`~"

	for _, ch := range password {
		switch {
		case ch >= 'A' && ch <= 'Z':
			hasUpper = true
		case ch >= '0' && ch <= '9':
			hasNumber = true
		case strings.ContainsRune(specialChars, ch):
			hasSpecial = true
		}
	}

	if !hasUpper {
		return errors.New("password must contain at least one uppercase letter")
	}
	if !hasNumber {
		return errors.New("password must contain at least one number")
	}
	if !hasSpecial {
		return errors.New("password must contain at least one special character")
	}
	return nil
}

/*
* Generate a bcrypt based on the password given
 */
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

/*
* Validate the sign up input
* Reject an email that already has an account
* Hash the password, create the user, issue a token
 */
func SignUp(c *gin.Context, data map[string]interface{}) (map[string]interface{}, error) {
	email, password, err := validateAuthInput(data)
	if err != nil {
		log.Println("error from validation input for the sign up:", err)
		return nil, err
	}

	if err := validatePasswordRules(password); err != nil {
		return nil, err
	}

	existing, err := store.Users.FetchByEmail(c, email)
	if err != nil {
		log.Println("Error from FetchByEmail:", err)
		return nil, err
	}
	if existing != nil {
		return nil, errors.New(util.EMAIL_ALREADY_REGISTERED)
	}

	hashedPassword, err := HashPassword(password)
	if err != nil {
		log.Println("Error from hashedPassword:", err)
		return nil, errors.New("failed to hash password")
	}

	user := &models.User{
		Email:    email,
		Password: hashedPassword,
	}
	if err := store.Users.Create(c, user); err != nil {
		log.Println("Error from user create:", err)
		return nil, err
	}

	token, err := jwt.GenerateJWT(user.Code, user.Email)
	if err != nil {
		log.Println("Error while generating the token:", err)
		return nil, err
	}

	return map[string]interface{}{
		"user":  map[string]interface{}{"code": user.Code, "email": user.Email},
		"token": token,
	}, nil
}

/*
* Validate the sign in input
* Fetch the account by email
* Compare the input password with the stored hash
* Issue a token scoped to the user's code
 */
func SignIn(c *gin.Context, data map[string]interface{}) (map[string]interface{}, error) {
	email, password, err := validateAuthInput(data)
	if err != nil {
		log.Println("error from validation input for the sign in:", err)
		return nil, err
	}

	user, err := store.Users.FetchByEmail(c, email)
	if err != nil {
		log.Println("Error from FetchByEmail:", err)
		return nil, err
	}
	if user == nil {
		return nil, errors.New(util.USER_NOT_FOUND)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, errors.New(util.PASSWORD_MISMATCH)
	}

	token, err := jwt.GenerateJWT(user.Code, user.Email)
	if err != nil {
		log.Println("Error while generating the token:", err)
		return nil, err
	}

	return map[string]interface{}{
		"user":  map[string]interface{}{"code": user.Code, "email": user.Email},
		"token": token,
	}, nil
}
