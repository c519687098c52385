// Copyright 2018-2020 The hw developers
// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.
package rpcclient

import (
	"bytes"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net"
	"net/http"

	"github.com/btcsuite/go-socks/socks"
	"github.com/pkg/errors"

	"github.com/hwallet/hw/wallet"
)

// Config describes the connection to the wallet engine RPC server.
type Config struct {
	Server        string
	User          string
	Pass          string
	Cert          string
	NoTLS         bool
	TLSSkipVerify bool
	Proxy         string
	ProxyUser     string
	ProxyPass     string
}

// Client talks JSON-RPC over HTTP POST to the wallet engine. It implements
// wallet.Engine; the command layer never sees the transport.
type Client struct {
	cfg        *Config
	httpClient *http.Client
	nextID     uint64
}

func New(cfg *Config) (*Client, error) {
	httpClient, err := newHTTPClient(cfg)
	if err != nil {
		return nil, err
	}
	return &Client{cfg: cfg, httpClient: httpClient}, nil
}

// newHTTPClient returns an HTTP client configured according to the proxy
// and TLS settings of the connection config.
func newHTTPClient(cfg *Config) (*http.Client, error) {
	var dial func(network, addr string) (net.Conn, error)
	if cfg.Proxy != "" {
		proxy := &socks.Proxy{
			Addr:     cfg.Proxy,
			Username: cfg.ProxyUser,
			Password: cfg.ProxyPass,
		}
		dial = func(network, addr string) (net.Conn, error) {
			return proxy.Dial(network, addr)
		}
	}

	var tlsConfig *tls.Config
	if !cfg.NoTLS {
		tlsConfig = &tls.Config{
			InsecureSkipVerify: cfg.TLSSkipVerify,
		}
		if !cfg.TLSSkipVerify && cfg.Cert != "" {
			pem, err := ioutil.ReadFile(cfg.Cert)
			if err != nil {
				return nil, err
			}
			pool := x509.NewCertPool()
			if ok := pool.AppendCertsFromPEM(pem); !ok {
				return nil, errors.Errorf("invalid certificate file: %v", cfg.Cert)
			}
			tlsConfig.RootCAs = pool
		}
	}

	return &http.Client{
		Transport: &http.Transport{
			Dial:            dial,
			TLSClientConfig: tlsConfig,
		},
	}, nil
}

// request is a JSON-RPC request object.
type request struct {
	Jsonrpc string            `json:"jsonrpc"`
	Method  string            `json:"method"`
	Params  []json.RawMessage `json:"params"`
	ID      uint64            `json:"id"`
}

// response is a JSON-RPC response object.
type response struct {
	Result json.RawMessage `json:"result"`
	Error  *RPCError       `json:"error"`
}

// RPCError is the error member of a JSON-RPC response.
type RPCError struct {
	Code    int    `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

// call performs one JSON-RPC operation against the wallet engine and
// returns its generic result value. A JSON null result maps to the nil
// no-output sentinel.
func (c *Client) call(method string, params []interface{}) (wallet.Result, error) {
	rawParams := make([]json.RawMessage, 0, len(params))
	for _, param := range params {
		marshaled, err := json.Marshal(param)
		if err != nil {
			return nil, errors.Wrapf(err, "could not marshal %s param", method)
		}
		rawParams = append(rawParams, json.RawMessage(marshaled))
	}
	c.nextID++
	reqData, err := json.Marshal(&request{
		Jsonrpc: "1.0",
		Method:  method,
		Params:  rawParams,
		ID:      c.nextID,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "could not marshal %s request", method)
	}

	raw, err := c.post(reqData)
	if err != nil {
		return nil, errors.Wrapf(err, "wallet engine [%s]", method)
	}
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}
	var res interface{}
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, errors.Wrapf(err, "wallet engine [%s]: bad result", method)
	}
	return res, nil
}

// post sends the marshalled JSON-RPC request using HTTP POST and returns
// the result member of the reply, or the error member as an error.
func (c *Client) post(marshalledJSON []byte) ([]byte, error) {
	protocol := "http"
	if !c.cfg.NoTLS {
		protocol = "https"
	}
	url := protocol + "://" + c.cfg.Server
	httpRequest, err := http.NewRequest("POST", url, bytes.NewReader(marshalledJSON))
	if err != nil {
		return nil, err
	}
	httpRequest.Close = true
	httpRequest.Header.Set("Content-Type", "application/json")
	httpRequest.SetBasicAuth(c.cfg.User, c.cfg.Pass)

	httpResponse, err := c.httpClient.Do(httpRequest)
	if err != nil {
		return nil, err
	}
	respBytes, err := ioutil.ReadAll(httpResponse.Body)
	httpResponse.Body.Close()
	if err != nil {
		return nil, errors.Wrap(err, "reading reply")
	}

	if httpResponse.StatusCode < 200 || httpResponse.StatusCode >= 300 {
		if len(respBytes) == 0 {
			return nil, errors.Errorf("%d %s", httpResponse.StatusCode,
				http.StatusText(httpResponse.StatusCode))
		}
		return nil, errors.Errorf("status %d: %s", httpResponse.StatusCode, respBytes)
	}

	var resp response
	if err := json.Unmarshal(respBytes, &resp); err != nil {
		return nil, errors.Errorf("bad reply: %s", respBytes)
	}
	if resp.Error != nil {
		return nil, resp.Error
	}
	return resp.Result, nil
}
