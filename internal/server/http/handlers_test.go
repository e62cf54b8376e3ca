package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"xiangqi/internal/xiangqi"
)

func newTestServer(t *testing.T, suggestURL string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(NewRouter(NewHandler(suggestURL), "", ""))
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, req any, resp any) *http.Response {
	t.Helper()
	body, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	r, err := http.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("post %s: %v", url, err)
	}
	if resp != nil && r.StatusCode == http.StatusOK {
		if err := json.NewDecoder(r.Body).Decode(resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
	}
	r.Body.Close()
	return r
}

func TestNewGamePlayState(t *testing.T) {
	srv := newTestServer(t, "")

	var ng NewGameResponse
	postJSON(t, srv.URL+"/api/new_game", struct{}{}, &ng)
	if ng.GameID == "" || ng.ToMove != 0 || len(ng.LegalMoves) == 0 {
		t.Fatalf("bad new_game response: %+v", ng)
	}

	var play PlayResponse
	r := postJSON(t, srv.URL+"/api/play", PlayRequest{GameID: ng.GameID, Move: ng.LegalMoves[0]}, &play)
	if r.StatusCode != http.StatusOK {
		t.Fatalf("play status %d", r.StatusCode)
	}
	if play.ToMove != 1 || play.Status != "ongoing" {
		t.Fatalf("bad play response: %+v", play)
	}

	var st StateResponse
	postJSON(t, srv.URL+"/api/state", StateRequest{GameID: ng.GameID}, &st)
	if len(st.History) != 1 || st.History[0] != ng.LegalMoves[0] {
		t.Fatalf("history: %+v", st.History)
	}
	if st.Position != play.Position {
		t.Fatalf("state position %q != play position %q", st.Position, play.Position)
	}
}

func TestPlayRejectsIllegalMove(t *testing.T) {
	srv := newTestServer(t, "")

	var ng NewGameResponse
	postJSON(t, srv.URL+"/api/new_game", struct{}{}, &ng)

	// (4,4) 是空格，从那里起手不可能合法
	bad := MoveDTO{From: 40, To: 41}
	r := postJSON(t, srv.URL+"/api/play", PlayRequest{GameID: ng.GameID, Move: bad}, nil)
	if r.StatusCode != http.StatusBadRequest {
		t.Fatalf("illegal move: status %d, want 400", r.StatusCode)
	}

	r = postJSON(t, srv.URL+"/api/play", PlayRequest{GameID: "missing", Move: bad}, nil)
	if r.StatusCode != http.StatusNotFound {
		t.Fatalf("unknown game: status %d, want 404", r.StatusCode)
	}
}

func TestMovesEndpoint(t *testing.T) {
	srv := newTestServer(t, "")

	var ng NewGameResponse
	postJSON(t, srv.URL+"/api/new_game", struct{}{}, &ng)

	var ms MovesResponse
	postJSON(t, srv.URL+"/api/moves", MovesRequest{GameID: ng.GameID, From: 81}, &ms)
	if len(ms.Moves) == 0 {
		t.Fatalf("red chariot should have moves from square 81")
	}
	for _, m := range ms.Moves {
		if m.From != 81 {
			t.Fatalf("move from wrong square: %+v", m)
		}
	}

	// 空格和越界都给空集，不报错
	for _, from := range []int{40, -3, 900} {
		postJSON(t, srv.URL+"/api/moves", MovesRequest{GameID: ng.GameID, From: from}, &ms)
		if len(ms.Moves) != 0 {
			t.Fatalf("from=%d: got %d moves, want 0", from, len(ms.Moves))
		}
	}
}

func TestSuggestFallbackWithoutService(t *testing.T) {
	srv := newTestServer(t, "")

	var ng NewGameResponse
	postJSON(t, srv.URL+"/api/new_game", struct{}{}, &ng)

	var sg SuggestResponse
	postJSON(t, srv.URL+"/api/suggest", SuggestRequest{GameID: ng.GameID}, &sg)
	if sg.Source != "fallback" {
		t.Fatalf("source: %q, want fallback", sg.Source)
	}
	if sg.ToMove != 1 {
		t.Fatalf("fallback move was not applied: %+v", sg)
	}

	var st StateResponse
	postJSON(t, srv.URL+"/api/state", StateRequest{GameID: ng.GameID}, &st)
	if len(st.History) != 1 || st.History[0] != sg.Move {
		t.Fatalf("suggest move not in history: %+v", st.History)
	}
}

func TestSuggestUsesServiceAndRevalidates(t *testing.T) {
	// 服务返回它收到的局面里的第一步合法招
	good := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Position string `json:"position"`
		}
		json.NewDecoder(r.Body).Decode(&req)
		pos, err := xiangqi.DecodePosition(req.Position)
		if err != nil {
			t.Errorf("service got bad position %q: %v", req.Position, err)
			http.Error(w, "bad position", http.StatusBadRequest)
			return
		}
		mv := pos.GeneratePseudoMoves()[0]
		json.NewEncoder(w).Encode(map[string]int{"from": mv.From, "to": mv.To})
	}))
	defer good.Close()

	srv := newTestServer(t, good.URL)
	var ng NewGameResponse
	postJSON(t, srv.URL+"/api/new_game", struct{}{}, &ng)

	var sg SuggestResponse
	postJSON(t, srv.URL+"/api/suggest", SuggestRequest{GameID: ng.GameID}, &sg)
	if sg.Source != "service" {
		t.Fatalf("source: %q, want service", sg.Source)
	}

	// 服务乱给棋：必须被拦下来换成兜底招，对局不许崩
	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]int{"from": -1, "to": 40})
	}))
	defer bad.Close()

	srv2 := newTestServer(t, bad.URL)
	postJSON(t, srv2.URL+"/api/new_game", struct{}{}, &ng)
	postJSON(t, srv2.URL+"/api/suggest", SuggestRequest{GameID: ng.GameID}, &sg)
	if sg.Source != "fallback" {
		t.Fatalf("source: %q, want fallback", sg.Source)
	}
	if sg.Status != "ongoing" || sg.ToMove != 1 {
		t.Fatalf("fallback did not keep the game going: %+v", sg)
	}
}

func TestDiagramEndpoint(t *testing.T) {
	srv := newTestServer(t, "")

	fen := xiangqi.NewInitialPosition().Encode()
	resp, err := http.Get(srv.URL + "/api/diagram?position=" + url.QueryEscape(fen))
	if err != nil {
		t.Fatalf("get diagram: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("diagram status %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.Contains(ct, "image/svg+xml") {
		t.Fatalf("content type %q", ct)
	}

	var buf bytes.Buffer
	buf.ReadFrom(resp.Body)
	if !strings.Contains(buf.String(), "<svg") {
		t.Fatalf("response does not look like SVG")
	}

	resp, err = http.Get(srv.URL + "/api/diagram?position=garbage")
	if err != nil {
		t.Fatalf("get bad diagram: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("bad position: status %d, want 400", resp.StatusCode)
	}
}

func TestWebSocketBroadcastOnPlay(t *testing.T) {
	srv := newTestServer(t, "")

	var ng NewGameResponse
	postJSON(t, srv.URL+"/api/new_game", struct{}{}, &ng)

	wsURL := strings.Replace(srv.URL, "http", "ws", 1) + "/ws/" + ng.GameID
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial ws: %v", err)
	}
	defer conn.Close()

	var first StateResponse
	if err := conn.ReadJSON(&first); err != nil {
		t.Fatalf("read initial state: %v", err)
	}
	if first.ToMove != 0 || len(first.History) != 0 {
		t.Fatalf("bad initial ws state: %+v", first)
	}

	var play PlayResponse
	postJSON(t, srv.URL+"/api/play", PlayRequest{GameID: ng.GameID, Move: ng.LegalMoves[0]}, &play)

	var pushed PlayResponse
	if err := conn.ReadJSON(&pushed); err != nil {
		t.Fatalf("read broadcast: %v", err)
	}
	if pushed.Position != play.Position {
		t.Fatalf("broadcast position %q != play position %q", pushed.Position, play.Position)
	}
}
