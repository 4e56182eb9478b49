// Copyright (C) 2025 SAGE-X Project
//
// This file is part of httpsig.
//
// httpsig is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// httpsig is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with httpsig.  If not, see <https://www.gnu.org/licenses/>.

package component

import "net/url"

// RequestMessage is the request half of a Message.
type RequestMessage struct {
	Method  string
	URL     *url.URL
	Header  Header
	Trailer Header
}

// ResponseMessage is the response half of a Message. BoundRequest, when
// set, is the request this response answers — used to resolve
// identifiers carrying the ";req" parameter.
type ResponseMessage struct {
	StatusCode   int
	Header       Header
	Trailer      Header
	BoundRequest *RequestMessage
}

// Message is a tagged union: exactly one of Request or Response is set.
type Message struct {
	Request  *RequestMessage
	Response *ResponseMessage
}

// NewRequestMessage builds a Message wrapping a request.
func NewRequestMessage(method string, u *url.URL, header Header) Message {
	return Message{Request: &RequestMessage{Method: method, URL: u, Header: header}}
}

// NewResponseMessage builds a Message wrapping a response, optionally
// bound to the request it answers.
func NewResponseMessage(status int, header Header, bound *RequestMessage) Message {
	return Message{Response: &ResponseMessage{StatusCode: status, Header: header, BoundRequest: bound}}
}

// IsRequest reports whether m wraps a request.
func (m Message) IsRequest() bool { return m.Request != nil }

// IsResponse reports whether m wraps a response.
func (m Message) IsResponse() bool { return m.Response != nil }

// header returns the header multimap of whichever side of the union is
// set, for req==false resolution.
func (m Message) header() Header {
	if m.Request != nil {
		return m.Request.Header
	}
	if m.Response != nil {
		return m.Response.Header
	}
	return nil
}

// trailer returns the trailer multimap of whichever side of the union
// is set, for the ";tr" parameter.
func (m Message) trailer() Header {
	if m.Request != nil {
		return m.Request.Trailer
	}
	if m.Response != nil {
		return m.Response.Trailer
	}
	return nil
}
