package common

// AuthorizationHeaderName is the HTTP header carrying the bearer access
// token on outbound requests.
const AuthorizationHeaderName = "Authorization"

// CSRFHeaderName is the HTTP header carrying the anti-forgery token on
// state-changing requests.
const CSRFHeaderName = "X-CSRFToken"

// CSRFCookieName is the cookie the backend sets after the anti-forgery
// bootstrap call; its value is echoed back via CSRFHeaderName.
const CSRFCookieName = "csrftoken"
