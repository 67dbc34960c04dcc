package logic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"mood_parrot/dto"
	"mood_parrot/shared"
	"net/http"
	"net/textproto"
	"strings"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../mocks/mock_slack_client.go -package mocks mood_parrot/logic ISlackClient

const (
	profileGetMethod = "users.profile.get"
	setPhotoMethod   = "users.setPhoto"
	photoFieldName   = "image"
	photoFileName    = "avatar.png"
	photoContentType = "image/png"
	maxResponseBytes = 1 << 20
)

// StatusSnapshot is the account's status and avatar as Slack reports them at one point in time.
type StatusSnapshot struct {
	StatusText  string
	StatusEmoji string
	AvatarHash  string
}

type ISlackClient interface {
	GetProfile(ctx context.Context) (*StatusSnapshot, error)
	SetPhoto(ctx context.Context, image []byte) (avatarHash string, err error)
}

type slackClient struct {
	cfg       *shared.Config
	logger    shared.ILogger
	userAgent shared.IUserAgent
	metrics   IMetrics
	client    *http.Client
	now       func() time.Time
}

func NewSlackClient(
	cfg *shared.Config,
	logger shared.ILogger,
	userAgent shared.IUserAgent,
	metrics IMetrics,
) ISlackClient {
	return &slackClient{
		cfg:       cfg,
		logger:    logger,
		userAgent: userAgent,
		metrics:   metrics,
		client:    &http.Client{Timeout: time.Duration(cfg.SlackTimeoutSec) * time.Second},
		now:       time.Now,
	}
}

func (sc *slackClient) methodUrl(method string) string {
	return strings.TrimRight(sc.cfg.SlackApiBase, "/") + "/" + method
}

func (sc *slackClient) GetProfile(ctx context.Context) (*StatusSnapshot, error) {

	var err error
	var req *http.Request
	if req, err = http.NewRequestWithContext(ctx, "GET", sc.methodUrl(profileGetMethod), nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}

	var resp *dto.SlackProfileResponse
	if resp, err = sc.call(profileGetMethod, req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}

	prof := resp.Profile
	res := StatusSnapshot{
		StatusText:  shared.UnescapeSlackText(prof.StatusText),
		StatusEmoji: prof.StatusEmoji,
		AvatarHash:  prof.AvatarHash,
	}
	if prof.StatusExpiration > 0 && sc.now().Unix() >= prof.StatusExpiration {
		sc.logger.Debugf("Status '%s' %s expired at %d; treating as empty",
			res.StatusText, res.StatusEmoji, prof.StatusExpiration)
		res.StatusText = ""
		res.StatusEmoji = ""
	}
	return &res, nil
}

func (sc *slackClient) SetPhoto(ctx context.Context, image []byte) (string, error) {

	var err error
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="%s"; filename="%s"`, photoFieldName, photoFileName))
	hdr.Set("Content-Type", photoContentType)
	var part io.Writer
	if part, err = mw.CreatePart(hdr); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpload, err)
	}
	if _, err = part.Write(image); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpload, err)
	}
	if err = mw.Close(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpload, err)
	}

	var req *http.Request
	if req, err = http.NewRequestWithContext(ctx, "POST", sc.methodUrl(setPhotoMethod), &body); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpload, err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var resp *dto.SlackProfileResponse
	if resp, err = sc.call(setPhotoMethod, req); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpload, err)
	}
	if resp.Profile.AvatarHash == "" {
		return "", fmt.Errorf("%w: %s response has no avatar hash", ErrUpload, setPhotoMethod)
	}
	return resp.Profile.AvatarHash, nil
}

// call sends an authenticated request and decodes a profile response; anything but an ok:true answer is an error.
func (sc *slackClient) call(method string, req *http.Request) (*dto.SlackProfileResponse, error) {

	req.Header.Set("Authorization", "Bearer "+sc.cfg.Secrets.SlackToken)
	req.Header.Set("Accept", "application/json")
	sc.userAgent.AddUserAgent(req)

	obs := sc.metrics.StartSlackRequestOut(method)
	defer obs.Finish()

	var err error
	var resp *http.Response
	if resp, err = sc.client.Do(req); err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%s failed with status %d", method, resp.StatusCode)
	}

	var bodyBytes []byte
	if bodyBytes, err = io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes)); err != nil {
		return nil, err
	}
	var obj dto.SlackProfileResponse
	if err = json.Unmarshal(bodyBytes, &obj); err != nil {
		return nil, fmt.Errorf("%s returned invalid JSON: %v", method, err)
	}
	if !obj.Ok {
		return nil, fmt.Errorf("%s returned error '%s'", method, obj.Error)
	}
	if obj.Profile == nil {
		return nil, fmt.Errorf("%s response has no profile", method)
	}
	return &obj, nil
}
