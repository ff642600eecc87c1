package randomorg

import (
	"Lucky99/internal/api/config"
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/goccy/go-json"
	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testURL = "https://random.test/json-rpc/4/invoke"

func newTestClient(t *testing.T) *Client {
	t.Helper()
	c := NewClient(config.RandomOrgConfig{
		URL:            testURL,
		ApiKey:         "test-api-key",
		TimeoutSeconds: 2,
	})
	httpmock.ActivateNonDefault(c.http.GetClient())
	t.Cleanup(httpmock.DeactivateAndReset)
	return c
}

func TestDrawSuccess(t *testing.T) {
	c := newTestClient(t)

	var gotReq rpcRequest
	httpmock.RegisterResponder("POST", testURL, func(req *http.Request) (*http.Response, error) {
		if err := json.NewDecoder(req.Body).Decode(&gotReq); err != nil {
			return nil, err
		}
		body := `{"jsonrpc":"2.0","result":{"random":{"data":[3,97,41,8,56,12,77,29,64,1]}},"id":1}`
		return httpmock.NewStringResponse(200, body), nil
	})

	data, err := c.Draw(context.Background(), 10, 1, 99)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 97, 41, 8, 56, 12, 77, 29, 64, 1}, data)

	// 必须无放回抽样
	assert.Equal(t, "generateIntegers", gotReq.Method)
	assert.Equal(t, "test-api-key", gotReq.Params.ApiKey)
	assert.Equal(t, 10, gotReq.Params.N)
	assert.Equal(t, 1, gotReq.Params.Min)
	assert.Equal(t, 99, gotReq.Params.Max)
	assert.False(t, gotReq.Params.Replacement)
}

func TestDrawServiceError(t *testing.T) {
	c := newTestClient(t)
	httpmock.RegisterResponder("POST", testURL, httpmock.NewStringResponder(200,
		`{"jsonrpc":"2.0","error":{"code":202,"message":"API key is not valid"},"id":1}`))

	_, err := c.Draw(context.Background(), 10, 1, 99)
	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, 202, svcErr.Code)
	assert.Equal(t, "API key is not valid", svcErr.Message)
}

func TestDrawMissingResult(t *testing.T) {
	c := newTestClient(t)
	// 既没有 result 也没有 error 的畸形响应不能被当成空结果
	httpmock.RegisterResponder("POST", testURL, httpmock.NewStringResponder(200,
		`{"jsonrpc":"2.0","id":1}`))

	_, err := c.Draw(context.Background(), 10, 1, 99)
	var protoErr *ProtocolError
	require.ErrorAs(t, err, &protoErr)
}

func TestDrawInvalidJson(t *testing.T) {
	c := newTestClient(t)
	httpmock.RegisterResponder("POST", testURL, httpmock.NewStringResponder(200, `<html>gateway error</html>`))

	_, err := c.Draw(context.Background(), 10, 1, 99)
	var protoErr *ProtocolError
	require.ErrorAs(t, err, &protoErr)
}

func TestDrawWrongCount(t *testing.T) {
	c := newTestClient(t)
	httpmock.RegisterResponder("POST", testURL, httpmock.NewStringResponder(200,
		`{"jsonrpc":"2.0","result":{"random":{"data":[1,2,3]}},"id":1}`))

	_, err := c.Draw(context.Background(), 10, 1, 99)
	var protoErr *ProtocolError
	require.ErrorAs(t, err, &protoErr)
}

func TestDrawDuplicateNumbers(t *testing.T) {
	c := newTestClient(t)
	httpmock.RegisterResponder("POST", testURL, httpmock.NewStringResponder(200,
		`{"jsonrpc":"2.0","result":{"random":{"data":[5,5,3,8,9,10,11,12,13,14]}},"id":1}`))

	_, err := c.Draw(context.Background(), 10, 1, 99)
	var protoErr *ProtocolError
	require.ErrorAs(t, err, &protoErr)
}

func TestDrawOutOfRange(t *testing.T) {
	c := newTestClient(t)
	httpmock.RegisterResponder("POST", testURL, httpmock.NewStringResponder(200,
		`{"jsonrpc":"2.0","result":{"random":{"data":[0,2,3,4,5,6,7,8,9,10]}},"id":1}`))

	_, err := c.Draw(context.Background(), 10, 1, 99)
	var protoErr *ProtocolError
	require.ErrorAs(t, err, &protoErr)
}

func TestDrawTransportError(t *testing.T) {
	c := newTestClient(t)
	httpmock.RegisterResponder("POST", testURL,
		httpmock.NewErrorResponder(errors.New("connection refused")))

	_, err := c.Draw(context.Background(), 10, 1, 99)
	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
}
