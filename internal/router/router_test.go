package router_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"omnixius-ai/internal/router"
	"omnixius-ai/pkg/log"
)

func newTestRouter(t *testing.T) *router.KeywordRouter {
	t.Helper()
	lex, err := router.DefaultLexicon()
	require.NoError(t, err)
	r, err := router.New(lex, log.NewNop())
	require.NoError(t, err)
	return r
}

func TestClassify(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name      string
		message   string
		intent    router.Intent
		productID int
		lang      string
	}{
		// my orders
		{name: "EN my orders", message: "Show my orders", intent: router.IntentMyOrders, lang: router.LangEnglish},
		{name: "EN bare orders", message: "ORDERS", intent: router.IntentMyOrders, lang: router.LangEnglish},
		{name: "EN list orders", message: "list orders please", intent: router.IntentMyOrders},
		{name: "RU my orders", message: "Мои заказы", intent: router.IntentMyOrders, lang: router.LangRussian},
		{name: "RU show orders", message: "покажи заказы", intent: router.IntentMyOrders, lang: router.LangRussian},
		{name: "RU list of orders", message: "список заказов", intent: router.IntentMyOrders, lang: router.LangRussian},
		{name: "RU singular order", message: "мой заказ", intent: router.IntentMyOrders, lang: router.LangRussian},
		{name: "RU bare root", message: "заказ", intent: router.IntentMyOrders, lang: router.LangRussian},
		{name: "RU where is my order", message: "где мой заказ?", intent: router.IntentMyOrders, lang: router.LangRussian},
		{name: "RU order root beats place an order", message: "Оформить заказ 42", intent: router.IntentMyOrders, lang: router.LangRussian},
		{name: "RU order root beats order verb", message: "заказать товар 12", intent: router.IntentMyOrders, lang: router.LangRussian},
		{name: "FR my orders", message: "mes commandes", intent: router.IntentMyOrders, lang: router.LangFrench},
		{name: "FR list of orders", message: "liste des commandes", intent: router.IntentMyOrders, lang: router.LangFrench},

		// create order
		{name: "EN create order with id", message: "create order 42", intent: router.IntentCreateOrder, productID: 42, lang: router.LangEnglish},
		{name: "EN upper bound", message: "order product 999999", intent: router.IntentCreateOrder, productID: 999999},
		{name: "EN out of range", message: "order product 1000000", intent: router.IntentCreateOrder, productID: 0},
		{name: "EN place an order", message: "Place an order for product 7", intent: router.IntentCreateOrder, productID: 7},
		{name: "EN buy", message: "buy item 15", intent: router.IntentCreateOrder, productID: 15},
		{name: "EN hash id", message: "order #12", intent: router.IntentCreateOrder, productID: 12},
		{name: "EN no id", message: "create an order", intent: router.IntentCreateOrder, productID: 0},
		{name: "EN zero id", message: "create order 0", intent: router.IntentCreateOrder, productID: 0},
		{name: "EN leading zeros", message: "create order 0042", intent: router.IntentCreateOrder, productID: 42},
		{name: "EN first number wins", message: "order product 5 for 10 dollars", intent: router.IntentCreateOrder, productID: 5},
		{name: "RU buy a product", message: "купить товар 12", intent: router.IntentCreateOrder, productID: 12, lang: router.LangRussian},
		{name: "RU imperative", message: "закажи 3", intent: router.IntentCreateOrder, productID: 3, lang: router.LangRussian},
		{name: "FR order a product", message: "commander le produit 8", intent: router.IntentCreateOrder, productID: 8, lang: router.LangFrench},
		{name: "FR place an order", message: "passer une commande 5", intent: router.IntentCreateOrder, productID: 5, lang: router.LangFrench},

		// precedence
		{name: "my orders beats create", message: "my orders, then create order 5", intent: router.IntentMyOrders},
		{name: "orders beats conversations", message: "orders and messages", intent: router.IntentMyOrders},
		{name: "create beats conversations", message: "buy 9 and check messages", intent: router.IntentCreateOrder, productID: 9},

		// conversations
		{name: "EN summarize messages", message: "summarize my messages", intent: router.IntentConversationsSummary, lang: router.LangEnglish},
		{name: "EN inbox", message: "inbox", intent: router.IntentConversationsSummary},
		{name: "EN chats", message: "any new chats?", intent: router.IntentConversationsSummary},
		{name: "RU messages", message: "мои сообщения", intent: router.IntentConversationsSummary, lang: router.LangRussian},
		{name: "RU correspondence", message: "Переписка", intent: router.IntentConversationsSummary, lang: router.LangRussian},
		{name: "RU summary of chats", message: "сводка по чатам", intent: router.IntentConversationsSummary, lang: router.LangRussian},
		{name: "FR conversations", message: "mes conversations", intent: router.IntentConversationsSummary},
		{name: "FR summary of discussions", message: "résumé des discussions", intent: router.IntentConversationsSummary, lang: router.LangFrench},

		// no match
		{name: "Unrelated", message: "hello there", intent: router.IntentNone},
		{name: "Empty", message: "", intent: router.IntentNone},
		{name: "Whitespace", message: "   \t", intent: router.IntentNone},
		{name: "Word boundary EN", message: "he reorders books", intent: router.IntentNone},
		{name: "Word boundary RU", message: "перезаказ", intent: router.IntentNone},
		{name: "Summary alone", message: "give me a summary", intent: router.IntentNone},
		{name: "Number alone", message: "42", intent: router.IntentNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := r.Classify(context.Background(), tc.message)
			assert.Equal(t, tc.intent, got.Intent)
			assert.Equal(t, tc.productID, got.ProductID)
			if tc.lang != "" {
				assert.Equal(t, tc.lang, got.Language)
			}
		})
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	r := newTestRouter(t)
	for _, msg := range []string{"my orders", "create order 42", "inbox", "hello there"} {
		first := r.Classify(context.Background(), msg)
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, r.Classify(context.Background(), msg), msg)
		}
	}
}

func TestChainOrder(t *testing.T) {
	r := newTestRouter(t)
	assert.Equal(t, []router.Intent{
		router.IntentMyOrders,
		router.IntentCreateOrder,
		router.IntentConversationsSummary,
	}, r.Intents())
}

type stubClassifier struct {
	intent router.Intent
	fires  bool
	calls  *int
}

func (s stubClassifier) Intent() router.Intent { return s.intent }
func (s stubClassifier) Match(string) (router.Verdict, bool) {
	*s.calls++
	if !s.fires {
		return router.NoMatch, false
	}
	return router.Verdict{Intent: s.intent}, true
}

func TestFirstAcceptingClassifierWins(t *testing.T) {
	var a, b, c int
	r := router.NewWithClassifiers(log.NewNop(),
		stubClassifier{intent: router.IntentMyOrders, calls: &a},
		stubClassifier{intent: router.IntentCreateOrder, fires: true, calls: &b},
		stubClassifier{intent: router.IntentConversationsSummary, fires: true, calls: &c},
	)

	got := r.Classify(context.Background(), "anything")

	assert.Equal(t, router.IntentCreateOrder, got.Intent)
	assert.Equal(t, 1, a)
	assert.Equal(t, 1, b)
	assert.Equal(t, 0, c, "classifiers after the first match must not run")
}

func TestExtractProductID(t *testing.T) {
	tests := map[string]int{
		"":                        0,
		"no digits":               0,
		"1":                       1,
		"x 999999 y":              999999,
		"1000000":                 0,
		"99999999999999999999999": 0,
		"000":                     0,
		"a7b8":                    7,
	}
	for text, want := range tests {
		assert.Equal(t, want, router.ExtractProductID(text), text)
	}
}

func TestVerdictHelpers(t *testing.T) {
	assert.False(t, router.NoMatch.Matched())
	assert.True(t, router.Verdict{Intent: router.IntentMyOrders}.Matched())
	assert.True(t, router.Verdict{Intent: router.IntentCreateOrder, ProductID: 1}.HasProductID())
	assert.False(t, router.Verdict{Intent: router.IntentCreateOrder}.HasProductID())
}
