// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package rtcmodels

import (
	"encoding/json"
	"testing"

	"github.com/pion/rtcmodels/internal/util"
	"github.com/pion/rtcmodels/pkg/rtcerr"
	"github.com/pion/stun/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestICEServer_Serialization(t *testing.T) {
	testCases := []struct {
		fixture  string
		expected ICEServer
	}{
		{"iceserver_only_urls_string.json", ICEServer{
			URLs: NewICEServerURL("stun:stun.example.org:3478"),
		}},
		{"iceserver_only_urls_list.json", ICEServer{
			URLs: NewICEServerURLs("stun:stun.example.org:3478", "stun:stun.example.org:80"),
		}},
		{"iceserver_urls_string.json", ICEServer{
			URLs:       NewICEServerURL("turn:turn.example.org:3478"),
			Username:   util.Ref("username"),
			Credential: util.Ref("credential"),
		}},
		{"iceserver_urls_list.json", ICEServer{
			URLs:       NewICEServerURLs("turn:turn.example.org:3478", "turn:turn.example.org:80"),
			Username:   util.Ref("username"),
			Credential: util.Ref("credential"),
		}},
	}

	for _, testCase := range testCases {
		t.Run(testCase.fixture, func(t *testing.T) {
			data := loadFixture(t, testCase.fixture)

			var server ICEServer
			require.NoError(t, json.Unmarshal(data, &server))
			assert.Equal(t, testCase.expected, server)

			encoded, err := server.MarshalJSON()
			require.NoError(t, err)
			assert.Equal(t, string(data), string(encoded))

			var roundTrip ICEServer
			require.NoError(t, json.Unmarshal(encoded, &roundTrip))
			assert.Equal(t, server, roundTrip)
		})
	}
}

func TestICEServer_OmitDefault(t *testing.T) {
	server := ICEServer{URLs: NewICEServerURL("stun:stun.example.org")}
	encoded, err := server.MarshalJSON()
	assert.NoError(t, err)
	assert.Equal(t, `{"urls":"stun:stun.example.org"}`, string(encoded))

	server.Username = util.Ref("")
	encoded, err = server.MarshalJSON()
	assert.NoError(t, err)
	assert.Equal(t, `{"urls":"stun:stun.example.org","username":""}`, string(encoded))

	server = ICEServer{URLs: NewICEServerURLs()}
	encoded, err = server.MarshalJSON()
	assert.NoError(t, err)
	assert.Equal(t, `{"urls":[]}`, string(encoded))
}

func TestICEServer_JSONFailure(t *testing.T) {
	testCases := []struct {
		data        string
		expectedErr error
	}{
		{`{"urls":5}`, ErrInvalidURLsType},
		{`{"urls":{"a":"b"}}`, ErrInvalidURLsType},
		{`{"urls":[1,2]}`, ErrInvalidURLsType},
		{`{"urls":null}`, ErrFieldType},
		{`{"username":"unittest"}`, ErrMissingField},
		{`{"urls":"stun:stun.example.org","username":6}`, ErrFieldType},
		{`{"urls":"stun:stun.example.org","credential":{"MACKey":"WmtzanB3ZW9peFhtdm42NzUzNG0="}}`, ErrFieldType},
	}

	for i, testCase := range testCases {
		server := ICEServer{URLs: NewICEServerURL("untouched")}
		err := server.UnmarshalJSON([]byte(testCase.data))

		var typeErr *rtcerr.TypeError
		assert.ErrorAs(t, err, &typeErr, "testCase: %d %s", i, testCase.data)
		assert.ErrorIs(t, err, testCase.expectedErr, "testCase: %d %s", i, testCase.data)
		assert.Equal(t, ICEServer{URLs: NewICEServerURL("untouched")}, server, "testCase: %d", i)
	}
}

func TestICEServerURLs(t *testing.T) {
	single := NewICEServerURL("turn:example.com")
	assert.False(t, single.IsList())
	assert.Equal(t, []string{"turn:example.com"}, single.Values())

	list := NewICEServerURLs("turn:example.com", "turn:example2.com")
	assert.True(t, list.IsList())
	assert.Equal(t, []string{"turn:example.com", "turn:example2.com"}, list.Values())

	values := list.Values()
	values[0] = "changed"
	assert.Equal(t, []string{"turn:example.com", "turn:example2.com"}, list.Values())

	for _, data := range []string{`{"urls":"turn:example.com"}`, `{"urls":["turn:example.com","turn:example2.com"]}`} {
		var server ICEServer
		require.NoError(t, server.UnmarshalJSON([]byte(data)))

		encoded, err := server.MarshalJSON()
		require.NoError(t, err)
		assert.Equal(t, data, string(encoded))
	}
}

func TestICEServer_URIs(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		testCases := []struct {
			iceServer ICEServer
			expected  []*stun.URI
		}{
			{ICEServer{
				URLs: NewICEServerURL("stun:stun.example.org:3478"),
			}, []*stun.URI{
				{Scheme: stun.SchemeTypeSTUN, Host: "stun.example.org", Port: 3478, Proto: stun.ProtoTypeUDP},
			}},
			{ICEServer{
				URLs:       NewICEServerURLs("turn:192.158.29.39?transport=udp"),
				Username:   util.Ref("unittest"),
				Credential: util.Ref("placeholder"),
			}, []*stun.URI{
				{
					Scheme: stun.SchemeTypeTURN, Host: "192.158.29.39", Port: 3478,
					Username: "unittest", Password: "placeholder", Proto: stun.ProtoTypeUDP,
				},
			}},
		}

		for i, testCase := range testCases {
			uris, err := testCase.iceServer.URIs()
			require.NoError(t, err, "testCase: %d", i)
			require.Len(t, uris, len(testCase.expected), "testCase: %d", i)
			for j, expected := range testCase.expected {
				assert.Equal(t, expected.Scheme, uris[j].Scheme, "testCase: %d", i)
				assert.Equal(t, expected.Host, uris[j].Host, "testCase: %d", i)
				assert.Equal(t, expected.Port, uris[j].Port, "testCase: %d", i)
				assert.Equal(t, expected.Username, uris[j].Username, "testCase: %d", i)
				assert.Equal(t, expected.Password, uris[j].Password, "testCase: %d", i)
				assert.Equal(t, expected.Proto, uris[j].Proto, "testCase: %d", i)
			}
		}
	})

	t.Run("Failure", func(t *testing.T) {
		testCases := []struct {
			iceServer   ICEServer
			expectedErr error
		}{
			{ICEServer{
				URLs: NewICEServerURL("turn:192.158.29.39?transport=udp"),
			}, ErrNoTurnCredentials},
			{ICEServer{
				URLs:     NewICEServerURL("turns:192.158.29.39"),
				Username: util.Ref("unittest"),
			}, ErrNoTurnCredentials},
			{ICEServer{
				URLs:       NewICEServerURL("turn:192.158.29.39"),
				Username:   util.Ref(""),
				Credential: util.Ref("placeholder"),
			}, ErrNoTurnCredentials},
			{ICEServer{
				URLs: NewICEServerURL("stun:google.de?transport=udp"),
			}, stun.ErrSTUNQuery},
		}

		for i, testCase := range testCases {
			_, err := testCase.iceServer.URIs()

			var accessErr *rtcerr.InvalidAccessError
			assert.ErrorAs(t, err, &accessErr, "testCase: %d", i)
			assert.ErrorIs(t, err, testCase.expectedErr, "testCase: %d", i)
		}
	})
}
