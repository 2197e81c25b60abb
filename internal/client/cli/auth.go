package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/connectly/authsvc/internal/common"
)

// Seams for the interactive prompts so command tests can feed canned input.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

type signupPayload struct {
	FullName string `json:"FullName"`
	UserName string `json:"UserName"`
	Email    string `json:"emailId"`
	Password string `json:"Password"`
}

type signinPayload struct {
	UserName string `json:"UserName"`
	Password string `json:"Password"`
}

type serverMessage struct {
	Message          string   `json:"message"`
	Error            string   `json:"error"`
	ValidationErrors []string `json:"validationErrors"`
}

// postJSON sends body to path and decodes the server's envelope. The session
// cookie, if any, lands in the client's jar automatically.
func (a *App) postJSON(path string, body any) (int, *serverMessage, error) {

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return 0, nil, err
	}

	resp, err := a.client.Post(a.config.ServerEndpointAddr+path, "application/json", &buf)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	var msg serverMessage
	if err := json.NewDecoder(resp.Body).Decode(&msg); err != nil {
		return resp.StatusCode, nil, err
	}

	return resp.StatusCode, &msg, nil
}

func (a *App) Register() {

	fullName, err := getSimpleText(a.reader, "Enter full name", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return
	}
	userName, err := getSimpleText(a.reader, "Enter user name", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return
	}
	defer common.WipeByteArray(password)

	status, msg, err := a.postJSON("/signup", signupPayload{
		FullName: fullName,
		UserName: userName,
		Email:    email,
		Password: string(password),
	})
	if err != nil {
		fmt.Println(err.Error())
		return
	}

	if status != http.StatusOK {
		for _, v := range msg.ValidationErrors {
			fmt.Println(v)
		}
		if msg.Message != "" {
			fmt.Println(msg.Message)
		}
		return
	}

	a.loggedIn = true
	fmt.Println(msg.Message)
}

func (a *App) Login() {

	userName, err := getSimpleText(a.reader, "Enter user name", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return
	}
	defer common.WipeByteArray(password)

	status, msg, err := a.postJSON("/signin", signinPayload{
		UserName: userName,
		Password: string(password),
	})
	if err != nil {
		fmt.Println(err.Error())
		return
	}

	if status != http.StatusOK {
		fmt.Println(msg.Message)
		return
	}

	a.loggedIn = true
	fmt.Println(msg.Message)
}

func (a *App) Logout() {

	status, msg, err := a.postJSON("/signout", struct{}{})
	if err != nil {
		fmt.Println(err.Error())
		return
	}

	if status != http.StatusOK {
		fmt.Println(msg.Message)
		return
	}

	a.loggedIn = false
	fmt.Println(msg.Message)
}
