package controllers

import (
	"net/http"
	"testing"

	"github.com/softkr/timeheair/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMember(t *testing.T) {
	setupTestDB(t)
	r := newTestRouter()

	w := doRequest(t, r, "POST", "/api/members", map[string]string{
		"name": "김회원", "phone": "01012345678",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var member models.Member
	decodeBody(t, w, &member)
	assert.NotEmpty(t, member.ID)
	assert.Equal(t, 0, member.Stamps)
	assert.False(t, member.BenefitEligible)
}

func TestCreateMemberRejectsDuplicatePhone(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter()

	seedMember(t, db, "김회원", "01012345678", 0)

	w := doRequest(t, r, "POST", "/api/members", map[string]string{
		"name": "다른사람", "phone": "01012345678",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCreateMemberRejectsBadPhone(t *testing.T) {
	setupTestDB(t)
	r := newTestRouter()

	w := doRequest(t, r, "POST", "/api/members", map[string]string{
		"name": "김회원", "phone": "abc",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetMembersSearch(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter()

	seedMember(t, db, "김회원", "01012345678", 0)
	seedMember(t, db, "박회원", "01098765432", 0)

	w := doRequest(t, r, "GET", "/api/members?search=1234", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var members []models.Member
	decodeBody(t, w, &members)
	require.Len(t, members, 1)
	assert.Equal(t, "김회원", members[0].Name)
}

func TestSearchMemberByPhoneExactMatch(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter()

	seedMember(t, db, "김회원", "01012345678", 0)

	w := doRequest(t, r, "GET", "/api/members/search?phone=01012345678", nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Partial numbers do not match
	w = doRequest(t, r, "GET", "/api/members/search?phone=0101234", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateMemberRejectsTakenPhone(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter()

	a := seedMember(t, db, "김회원", "01012345678", 0)
	seedMember(t, db, "박회원", "01098765432", 0)

	w := doRequest(t, r, "PUT", "/api/members/"+a.ID, map[string]string{
		"name": "김회원", "phone": "01098765432",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	// Keeping one's own number is fine
	w = doRequest(t, r, "PUT", "/api/members/"+a.ID, map[string]string{
		"name": "김개명", "phone": "01012345678",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Member
	decodeBody(t, w, &updated)
	assert.Equal(t, "김개명", updated.Name)
}

func TestAddStampCrossesThreshold(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter()

	member := seedMember(t, db, "김회원", "01012345678", 9)

	w := doRequest(t, r, "POST", "/api/members/"+member.ID+"/stamp", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Member
	decodeBody(t, w, &updated)
	assert.Equal(t, 10, updated.Stamps)
	assert.True(t, updated.BenefitEligible)
}

func TestUseStampsBelowThresholdFails(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter()

	member := seedMember(t, db, "김회원", "01012345678", 9)

	w := doRequest(t, r, "POST", "/api/members/"+member.ID+"/use-stamps", nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	var reloaded models.Member
	require.NoError(t, db.First(&reloaded, "id = ?", member.ID).Error)
	assert.Equal(t, 9, reloaded.Stamps)
}

func TestUseStampsSubtractsThreshold(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter()

	member := seedMember(t, db, "김회원", "01012345678", 13)

	w := doRequest(t, r, "POST", "/api/members/"+member.ID+"/use-stamps", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Member
	decodeBody(t, w, &updated)
	assert.Equal(t, 3, updated.Stamps, "excess stamps carry over")
	assert.False(t, updated.BenefitEligible)
}

func TestDeleteMemberKeepsLedgerHistory(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter()

	member := seedMember(t, db, "김회원", "01012345678", 0)
	require.NoError(t, db.Create(&models.LedgerEntry{
		MemberID: &member.ID, MemberName: member.Name,
		SeatID: 1, StaffID: "s001", StaffName: "원장", TotalPrice: 11000,
	}).Error)

	w := doRequest(t, r, "DELETE", "/api/members/"+member.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, r, "GET", "/api/members/"+member.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var entry models.LedgerEntry
	require.NoError(t, db.First(&entry).Error)
	assert.Equal(t, "김회원", entry.MemberName)
}
