// Package errfilter decides whether an ambient error is a critical
// authentication failure, a permission problem, or incidental noise.
//
// The filter exists because logging the user out on any 401 anywhere
// produces false positives: realtime channel drops, DNS failures, and
// transient 401s from unrelated endpoints are not proof the session is
// invalid. The allow-list policy narrows "critical" to the single response
// that is: a 401 from the current-user profile endpoint.
//
//	filter, err := errfilter.New(errfilter.Config{
//		ProfilePath: "/api/users/me",
//		APIPrefix:   "/api/",
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	switch filter.Classify(err) {
//	case errfilter.ClassCritical:
//		// 401 on the profile endpoint: invalidate the session.
//	case errfilter.ClassPermission:
//		// 403 under the API prefix: notify, keep the session.
//	case errfilter.ClassIgnored:
//		// Everything else: log only.
//	}
//
// Errors are matched via errors.As against *RequestError or any type
// implementing HTTPError, so wrapped errors classify correctly. The filter
// is independent of how errors are captured, which keeps the decision logic
// unit-testable without a global error mechanism.
package errfilter
