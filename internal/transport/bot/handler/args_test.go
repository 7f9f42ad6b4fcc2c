package handler_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"basket/internal/domain/entity"
	"basket/internal/transport/bot/handler"
)

func TestParseAddCommand(t *testing.T) {
	testCases := []struct {
		name   string
		text   string
		want   entity.FormDraft
		wantOK bool
	}{
		{
			name:   "single word name",
			text:   "/add 42 100 Чайник",
			want:   entity.FormDraft{Article: "42", Price: "100", Name: "Чайник"},
			wantOK: true,
		},
		{
			name:   "multi word name is joined",
			text:   "/add 7 19.99 Кружка  с   котом",
			want:   entity.FormDraft{Article: "7", Price: "19.99", Name: "Кружка с котом"},
			wantOK: true,
		},
		{
			name:   "raw values are passed through",
			text:   "/add abc -5 x",
			want:   entity.FormDraft{Article: "abc", Price: "-5", Name: "x"},
			wantOK: true,
		},
		{
			name:   "bot mention suffix",
			text:   "/add@basket_bot 1 2 Name",
			want:   entity.FormDraft{Article: "1", Price: "2", Name: "Name"},
			wantOK: true,
		},
		{name: "missing name", text: "/add 42 100"},
		{name: "command only", text: "/add"},
		{name: "empty", text: "   "},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			draft, ok := handler.ParseAddCommand(tc.text)
			rq.Equal(tc.wantOK, ok)
			rq.Equal(tc.want, draft)
		})
	}
}

func TestParseArticleArg(t *testing.T) {
	testCases := []struct {
		name   string
		text   string
		want   int64
		wantOK bool
	}{
		{name: "plain", text: "/remove 42", want: 42, wantOK: true},
		{name: "extra args ignored", text: "/select 7 lorem", want: 7, wantOK: true},
		{name: "max int64", text: "/remove 9223372036854775807", want: 9223372036854775807, wantOK: true},
		{name: "negative parsed as is", text: "/remove -3", want: -3, wantOK: true},
		{name: "overflow", text: "/remove 9223372036854775808"},
		{name: "fractional", text: "/remove 4.2"},
		{name: "not a number", text: "/remove abc"},
		{name: "missing", text: "/remove"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			article, ok := handler.ParseArticleArg(tc.text)
			rq.Equal(tc.wantOK, ok)
			rq.Equal(tc.want, article)
		})
	}
}

func TestParsePercentArg(t *testing.T) {
	testCases := []struct {
		name   string
		text   string
		want   float64
		wantOK bool
	}{
		{name: "integer", text: "/discount 10", want: 10, wantOK: true},
		{name: "fractional", text: "/discount 12.5", want: 12.5, wantOK: true},
		{name: "out of range is left to the service", text: "/discount 150", want: 150, wantOK: true},
		{name: "percent sign", text: "/discount 10%"},
		{name: "comma separator", text: "/discount 12,5"},
		{name: "missing", text: "/discount"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			percent, ok := handler.ParsePercentArg(tc.text)
			rq.Equal(tc.wantOK, ok)
			rq.InDelta(tc.want, percent, 1e-9)
		})
	}
}

func TestParseItemCallback(t *testing.T) {
	testCases := []struct {
		name        string
		data        string
		wantAction  handler.ItemAction
		wantArticle int64
		wantOK      bool
	}{
		{name: "select", data: "select:42", wantAction: handler.ActionSelect, wantArticle: 42, wantOK: true},
		{name: "remove", data: "remove:7", wantAction: handler.ActionRemove, wantArticle: 7, wantOK: true},
		{
			name:        "large article",
			data:        "remove:9007199254740993",
			wantAction:  handler.ActionRemove,
			wantArticle: 9007199254740993,
			wantOK:      true,
		},
		{name: "broken article keeps action", data: "select:abc", wantAction: handler.ActionSelect},
		{name: "empty article keeps action", data: "remove:", wantAction: handler.ActionRemove},
		{name: "unknown prefix", data: "buy:42"},
		{name: "prefix without colon", data: "select42"},
		{name: "empty", data: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			action, article, ok := handler.ParseItemCallback(tc.data)
			rq.Equal(tc.wantOK, ok)
			rq.Equal(tc.wantAction, action)
			rq.Equal(tc.wantArticle, article)
		})
	}
}
