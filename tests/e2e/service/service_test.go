//go:build e2e

package service_test

import (
	"fmt"
	"net/http"
	"testing"

	"salon-booking/internal/handler/dto/request"
	"salon-booking/internal/handler/dto/response"
	"salon-booking/tests/common/helper"
	"salon-booking/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	publicServicesURL = "/api/services"
	adminServicesURL  = "/api/admin/services"
	loginURL          = "/api/admin/login"
)

type serviceSuite struct {
	e2e.SharedSuite
	adminToken string
}

func TestServiceSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(serviceSuite))
}

func (s *serviceSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	reqBody := request.LoginRequest{Username: "admin", Password: "testpass"}
	w := helper.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL, reqBody, "")
	require.Equal(s.T(), http.StatusOK, w.Code, "管理者ログインに失敗: %s", w.Body.String())

	var loginRes response.LoginResponse
	helper.DecodeResponseBody(s.T(), w.Body, &loginRes)
	s.adminToken = loginRes.Token
}

func (s *serviceSuite) createService(req request.ServiceRequest) response.ServiceResponse {
	w := helper.PerformRequest(s.T(), s.Router, http.MethodPost, adminServicesURL, req, s.adminToken)
	require.Equal(s.T(), http.StatusCreated, w.Code, "メニューの作成に失敗: %s", w.Body.String())

	var created response.ServiceResponse
	helper.DecodeResponseBody(s.T(), w.Body, &created)
	return created
}

func newServiceRequest() request.ServiceRequest {
	return request.ServiceRequest{
		Name:          "カット",
		Description:   "シャンプー・ブロー込み",
		PriceYen:      4500,
		DurationLabel: "約60分",
		Icon:          "scissors",
		Popular:       true,
		DisplayOrder:  1,
	}
}

func (s *serviceSuite) TestCreateAndGet() {
	s.Run("メニューの作成と取得", func() {
		t := s.T()

		created := s.createService(newServiceRequest())
		require.NotZero(t, created.ID)
		require.Equal(t, "カット", created.Name)
		require.Equal(t, int64(4500), created.PriceYen)
		require.True(t, created.Active, "新規メニューは有効であるべき")

		w := helper.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf("%s/%d", adminServicesURL, created.ID), nil, s.adminToken)
		require.Equal(t, http.StatusOK, w.Code)

		var fetched response.ServiceResponse
		helper.DecodeResponseBody(t, w.Body, &fetched)
		require.Equal(t, created.ID, fetched.ID)
		require.Equal(t, created.Name, fetched.Name)
	})

	s.Run("名前なしは400", func() {
		t := s.T()

		req := newServiceRequest()
		req.Name = ""
		w := helper.PerformRequest(t, s.Router, http.MethodPost, adminServicesURL, req, s.adminToken)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	s.Run("負の料金は400", func() {
		t := s.T()

		req := newServiceRequest()
		req.PriceYen = -100
		w := helper.PerformRequest(t, s.Router, http.MethodPost, adminServicesURL, req, s.adminToken)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func (s *serviceSuite) TestPublicListing() {
	s.Run("公開側は有効なメニューだけ返す", func() {
		t := s.T()

		active := s.createService(newServiceRequest())

		hiddenReq := newServiceRequest()
		hiddenReq.Name = "パーマ"
		inactive := false
		hiddenReq.Active = &inactive
		s.createService(hiddenReq)

		w := helper.PerformRequest(t, s.Router, http.MethodGet, publicServicesURL, nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var services []response.ServiceResponse
		helper.DecodeResponseBody(t, w.Body, &services)
		require.Len(t, services, 1)
		require.Equal(t, active.ID, services[0].ID)
	})

	s.Run("管理側は無効なメニューも返す", func() {
		t := s.T()

		s.createService(newServiceRequest())

		hiddenReq := newServiceRequest()
		hiddenReq.Name = "パーマ"
		inactive := false
		hiddenReq.Active = &inactive
		s.createService(hiddenReq)

		w := helper.PerformRequest(t, s.Router, http.MethodGet, adminServicesURL, nil, s.adminToken)
		require.Equal(t, http.StatusOK, w.Code)

		var services []response.ServiceResponse
		helper.DecodeResponseBody(t, w.Body, &services)
		require.Len(t, services, 2)
	})
}

func (s *serviceSuite) TestUpdateAndDelete() {
	s.Run("メニューの更新", func() {
		t := s.T()

		created := s.createService(newServiceRequest())

		updateReq := newServiceRequest()
		updateReq.Name = "カット＋カラー"
		updateReq.PriceYen = 9800
		url := fmt.Sprintf("%s/%d", adminServicesURL, created.ID)

		w := helper.PerformRequest(t, s.Router, http.MethodPut, url, updateReq, s.adminToken)
		require.Equal(t, http.StatusOK, w.Code, "メニューの更新に失敗: %s", w.Body.String())

		w = helper.PerformRequest(t, s.Router, http.MethodGet, url, nil, s.adminToken)
		require.Equal(t, http.StatusOK, w.Code)

		var fetched response.ServiceResponse
		helper.DecodeResponseBody(t, w.Body, &fetched)
		require.Equal(t, "カット＋カラー", fetched.Name)
		require.Equal(t, int64(9800), fetched.PriceYen)
	})

	s.Run("メニューの削除", func() {
		t := s.T()

		created := s.createService(newServiceRequest())
		url := fmt.Sprintf("%s/%d", adminServicesURL, created.ID)

		w := helper.PerformRequest(t, s.Router, http.MethodDelete, url, nil, s.adminToken)
		require.Equal(t, http.StatusOK, w.Code)

		w = helper.PerformRequest(t, s.Router, http.MethodGet, url, nil, s.adminToken)
		require.Equal(t, http.StatusNotFound, w.Code, "削除済みのメニューが取得できてしまった")
	})

	s.Run("存在しないメニューは404", func() {
		t := s.T()

		w := helper.PerformRequest(t, s.Router, http.MethodDelete,
			adminServicesURL+"/99999", nil, s.adminToken)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func (s *serviceSuite) TestReminderRun() {
	s.Run("手動掃引エンドポイント", func() {
		t := s.T()

		w := helper.PerformRequest(t, s.Router, http.MethodPost, "/api/admin/reminders/run", nil, s.adminToken)
		require.Equal(t, http.StatusOK, w.Code, "手動掃引に失敗: %s", w.Body.String())
	})
}
