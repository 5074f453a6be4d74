package integration_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/filedrop/filedrop_api/internal/api/dto"
)

func newAPIClient() (*http.Client, string) {
	jar, err := cookiejar.New(nil)
	Expect(err).NotTo(HaveOccurred())

	return &http.Client{Jar: jar}, tsServer.URL + "/api"
}

func registerUser(client *http.Client, baseURL, email, password, name string) dto.AuthResponse {
	reqBytes, err := json.Marshal(dto.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: password,
	})
	Expect(err).NotTo(HaveOccurred())

	resp, err := client.Post(baseURL+"/auth/register", "application/json", bytes.NewReader(reqBytes))
	Expect(err).NotTo(HaveOccurred())

	bodyBytes, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	Expect(resp.StatusCode).To(Equal(http.StatusCreated), "Register should succeed. Body: %s", string(bodyBytes))

	var authResp dto.AuthResponse
	Expect(json.Unmarshal(bodyBytes, &authResp)).To(Succeed())

	return authResp
}

var _ = Describe("Auth Flow E2E", func() {
	var client *http.Client
	var baseURL string

	BeforeEach(func() {
		client, baseURL = newAPIClient()
	})

	It("Should register, login, fetch profile and logout", func() {
		// 1. Register a new user
		authResp := registerUser(client, baseURL, "alice@example.com", "secure_password123", "Alice")
		Expect(authResp.Email).To(Equal("alice@example.com"))
		Expect(authResp.Token).NotTo(BeEmpty())

		// 2. Login with the same credentials
		loginBytes, err := json.Marshal(dto.LoginRequest{
			Email:    "alice@example.com",
			Password: "secure_password123",
		})
		Expect(err).NotTo(HaveOccurred())

		loginResp, err := client.Post(baseURL+"/auth/login", "application/json", bytes.NewReader(loginBytes))
		Expect(err).NotTo(HaveOccurred())
		Expect(loginResp.StatusCode).To(Equal(http.StatusOK), "Login should succeed")
		loginResp.Body.Close()

		// Verify the session cookie was set
		cookies := client.Jar.Cookies(loginResp.Request.URL)
		Expect(cookies).NotTo(BeEmpty(), "Cookies should be set by login")

		// 3. Fetch own profile using the cookie session
		meResp, err := client.Get(baseURL + "/auth/me")
		Expect(err).NotTo(HaveOccurred())
		Expect(meResp.StatusCode).To(Equal(http.StatusOK), "Get /auth/me should succeed")

		var meData dto.MeResponse
		Expect(json.NewDecoder(meResp.Body).Decode(&meData)).To(Succeed())
		meResp.Body.Close()
		Expect(meData.Email).To(Equal("alice@example.com"))
		Expect(meData.Name).To(Equal("Alice"))

		// 4. Logout clears the cookie
		logoutResp, err := client.Post(baseURL+"/auth/logout", "application/json", nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(logoutResp.StatusCode).To(Equal(http.StatusOK))
		logoutResp.Body.Close()

		meAfter, err := client.Get(baseURL + "/auth/me")
		Expect(err).NotTo(HaveOccurred())
		Expect(meAfter.StatusCode).To(Equal(http.StatusUnauthorized), "Session should be gone after logout")
		meAfter.Body.Close()
	})

	It("Should reject a duplicate registration", func() {
		registerUser(client, baseURL, "bob@example.com", "secure_password123", "Bob")

		reqBytes, err := json.Marshal(dto.RegisterRequest{
			Email:    "bob@example.com",
			Password: "another_password456",
		})
		Expect(err).NotTo(HaveOccurred())

		resp, err := client.Post(baseURL+"/auth/register", "application/json", bytes.NewReader(reqBytes))
		Expect(err).NotTo(HaveOccurred())
		Expect(resp.StatusCode).To(Equal(http.StatusConflict))
		resp.Body.Close()
	})

	It("Should reject login with a wrong password", func() {
		registerUser(client, baseURL, "carol@example.com", "secure_password123", "Carol")

		loginBytes, err := json.Marshal(dto.LoginRequest{
			Email:    "carol@example.com",
			Password: "wrong_password999",
		})
		Expect(err).NotTo(HaveOccurred())

		resp, err := client.Post(baseURL+"/auth/login", "application/json", bytes.NewReader(loginBytes))
		Expect(err).NotTo(HaveOccurred())
		Expect(resp.StatusCode).To(Equal(http.StatusUnauthorized))
		resp.Body.Close()
	})

	It("Should accept a bearer token instead of the cookie", func() {
		authResp := registerUser(client, baseURL, "dave@example.com", "secure_password123", "Dave")

		// A fresh client with no cookie jar state
		bare := &http.Client{}
		req, err := http.NewRequest(http.MethodGet, baseURL+"/auth/me", nil)
		Expect(err).NotTo(HaveOccurred())
		req.Header.Set("Authorization", "Bearer "+authResp.Token)

		resp, err := bare.Do(req)
		Expect(err).NotTo(HaveOccurred())
		Expect(resp.StatusCode).To(Equal(http.StatusOK))

		var meData dto.MeResponse
		Expect(json.NewDecoder(resp.Body).Decode(&meData)).To(Succeed())
		resp.Body.Close()
		Expect(meData.Email).To(Equal("dave@example.com"))
	})
})
