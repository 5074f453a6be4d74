package integration_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/filedrop/filedrop_api/internal/api/dto"
)

func uploadFiles(client *http.Client, baseURL string, files map[string]struct {
	contentType string
	data        []byte
}) *http.Response {
	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)

	for name, f := range files {
		part, err := writer.CreatePart(map[string][]string{
			"Content-Disposition": {`form-data; name="files"; filename="` + name + `"`},
			"Content-Type":        {f.contentType},
		})
		Expect(err).NotTo(HaveOccurred())
		_, err = part.Write(f.data)
		Expect(err).NotTo(HaveOccurred())
	}
	Expect(writer.Close()).To(Succeed())

	req, err := http.NewRequest(http.MethodPost, baseURL+"/files/upload", body)
	Expect(err).NotTo(HaveOccurred())
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := client.Do(req)
	Expect(err).NotTo(HaveOccurred())

	return resp
}

var _ = Describe("File Sharing E2E", func() {
	var (
		owner, recipient, stranger *http.Client
		baseURL                    string
	)

	BeforeEach(func() {
		owner, baseURL = newAPIClient()
		recipient, _ = newAPIClient()
		stranger, _ = newAPIClient()
	})

	It("Should upload, share with a user and share by link", func() {
		registerUser(owner, baseURL, "owner@sharing.test", "secure_password123", "Owner")
		registerUser(recipient, baseURL, "recipient@sharing.test", "secure_password123", "Recipient")
		registerUser(stranger, baseURL, "stranger@sharing.test", "secure_password123", "Stranger")

		// 1. Owner uploads two files in one batch
		uploadResp := uploadFiles(owner, baseURL, map[string]struct {
			contentType string
			data        []byte
		}{
			"report.pdf": {"application/pdf", []byte("%PDF-1.4 dummy report")},
			"notes.txt":  {"text/plain", []byte("remember the milk")},
		})
		bodyBytes, _ := io.ReadAll(uploadResp.Body)
		uploadResp.Body.Close()
		Expect(uploadResp.StatusCode).To(Equal(http.StatusCreated), "Upload should succeed. Body: %s", string(bodyBytes))

		var uploaded []dto.UploadedFileResponse
		Expect(json.Unmarshal(bodyBytes, &uploaded)).To(Succeed())
		Expect(uploaded).To(HaveLen(2))

		var notesID string
		for _, f := range uploaded {
			if f.OriginalName == "notes.txt" {
				notesID = f.ID
			}
		}
		Expect(notesID).NotTo(BeEmpty())

		// 2. Recipient sees nothing yet
		listResp, err := recipient.Get(baseURL + "/files")
		Expect(err).NotTo(HaveOccurred())
		var recipientList dto.ListFilesResponse
		Expect(json.NewDecoder(listResp.Body).Decode(&recipientList)).To(Succeed())
		listResp.Body.Close()
		Expect(recipientList.MyFiles).To(BeEmpty())
		Expect(recipientList.SharedWithMe).To(BeEmpty())

		// 3. Owner shares notes.txt with the recipient by email. The owner's
		// own address in the list is ignored, in the grant and the response.
		shareBytes, err := json.Marshal(dto.ShareUsersRequest{
			Emails: []string{"recipient@sharing.test", "owner@sharing.test"},
		})
		Expect(err).NotTo(HaveOccurred())

		shareResp, err := owner.Post(baseURL+"/files/"+notesID+"/share/users",
			"application/json", bytes.NewReader(shareBytes))
		Expect(err).NotTo(HaveOccurred())
		Expect(shareResp.StatusCode).To(Equal(http.StatusOK))

		var shared dto.ShareUsersResponse
		Expect(json.NewDecoder(shareResp.Body).Decode(&shared)).To(Succeed())
		shareResp.Body.Close()
		Expect(shared.SharedWith).To(HaveLen(1))
		Expect(shared.SharedWith[0].Email).To(Equal("recipient@sharing.test"))

		// 4. Recipient now sees the file under sharedWithMe and can download it
		listResp, err = recipient.Get(baseURL + "/files")
		Expect(err).NotTo(HaveOccurred())
		Expect(json.NewDecoder(listResp.Body).Decode(&recipientList)).To(Succeed())
		listResp.Body.Close()
		Expect(recipientList.SharedWithMe).To(HaveLen(1))
		Expect(recipientList.SharedWithMe[0].OriginalName).To(Equal("notes.txt"))

		dlResp, err := recipient.Get(baseURL + "/files/" + notesID + "/download")
		Expect(err).NotTo(HaveOccurred())
		Expect(dlResp.StatusCode).To(Equal(http.StatusOK))
		Expect(dlResp.Header.Get("Content-Disposition")).To(ContainSubstring("notes.txt"))
		content, _ := io.ReadAll(dlResp.Body)
		dlResp.Body.Close()
		Expect(string(content)).To(Equal("remember the milk"))

		// 5. Stranger cannot download it
		forbiddenResp, err := stranger.Get(baseURL + "/files/" + notesID + "/download")
		Expect(err).NotTo(HaveOccurred())
		Expect(forbiddenResp.StatusCode).To(Equal(http.StatusForbidden))
		forbiddenResp.Body.Close()

		// 6. Owner issues a share link; a second call returns the same token
		linkResp, err := owner.Post(baseURL+"/files/"+notesID+"/share/link", "application/json", nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(linkResp.StatusCode).To(Equal(http.StatusOK))

		var link dto.ShareLinkResponse
		Expect(json.NewDecoder(linkResp.Body).Decode(&link)).To(Succeed())
		linkResp.Body.Close()
		Expect(link.Token).To(HaveLen(12))

		linkResp, err = owner.Post(baseURL+"/files/"+notesID+"/share/link", "application/json", nil)
		Expect(err).NotTo(HaveOccurred())
		var linkAgain dto.ShareLinkResponse
		Expect(json.NewDecoder(linkResp.Body).Decode(&linkAgain)).To(Succeed())
		linkResp.Body.Close()
		Expect(linkAgain.Token).To(Equal(link.Token))

		// 7. The link still requires authentication
		bare := &http.Client{}
		anonResp, err := bare.Get(baseURL + "/share/" + link.Token + "/download")
		Expect(err).NotTo(HaveOccurred())
		Expect(anonResp.StatusCode).To(Equal(http.StatusUnauthorized))
		anonResp.Body.Close()

		// 8. An authenticated user the file was shared with can follow the link
		tokenDlResp, err := recipient.Get(baseURL + "/share/" + link.Token + "/download")
		Expect(err).NotTo(HaveOccurred())
		Expect(tokenDlResp.StatusCode).To(Equal(http.StatusOK))
		content, _ = io.ReadAll(tokenDlResp.Body)
		tokenDlResp.Body.Close()
		Expect(string(content)).To(Equal("remember the milk"))
	})

	It("Should reject a batch containing a disallowed type", func() {
		registerUser(owner, baseURL, "strict@sharing.test", "secure_password123", "Strict")

		resp := uploadFiles(owner, baseURL, map[string]struct {
			contentType string
			data        []byte
		}{
			"ok.txt":      {"text/plain", []byte("fine")},
			"archive.zip": {"application/zip", []byte("PK\x03\x04")},
		})
		defer resp.Body.Close()
		Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))

		// Nothing from the batch was stored
		listResp, err := owner.Get(baseURL + "/files")
		Expect(err).NotTo(HaveOccurred())
		var list dto.ListFilesResponse
		Expect(json.NewDecoder(listResp.Body).Decode(&list)).To(Succeed())
		listResp.Body.Close()
		Expect(list.MyFiles).To(BeEmpty())
	})

	It("Should not let a non-owner share someone else's file", func() {
		registerUser(owner, baseURL, "author@sharing.test", "secure_password123", "Author")
		registerUser(recipient, baseURL, "viewer@sharing.test", "secure_password123", "Viewer")

		resp := uploadFiles(owner, baseURL, map[string]struct {
			contentType string
			data        []byte
		}{
			"private.txt": {"text/plain", []byte("secret")},
		})
		var uploaded []dto.UploadedFileResponse
		Expect(json.NewDecoder(resp.Body).Decode(&uploaded)).To(Succeed())
		resp.Body.Close()
		Expect(uploaded).To(HaveLen(1))

		shareBytes, err := json.Marshal(dto.ShareUsersRequest{Emails: []string{"viewer@sharing.test"}})
		Expect(err).NotTo(HaveOccurred())

		shareResp, err := recipient.Post(baseURL+"/files/"+uploaded[0].ID+"/share/users",
			"application/json", bytes.NewReader(shareBytes))
		Expect(err).NotTo(HaveOccurred())
		Expect(shareResp.StatusCode).To(Equal(http.StatusForbidden))
		shareResp.Body.Close()

		linkResp, err := recipient.Post(baseURL+"/files/"+uploaded[0].ID+"/share/link", "application/json", nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(linkResp.StatusCode).To(Equal(http.StatusForbidden))
		linkResp.Body.Close()
	})
})
