/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package hours

// Default closed-office prompts, keyed by scope. The main line offers the
// automated phone system; every other scope just asks the caller to try
// again on a business day. Prompt text is opaque SSML and is never parsed
// here.
//
// TODO: source these from the record catalog instead of constants.
const (
	closedPromptMain = " <speak>  <prosody pitch=\"medium\">Our office is currently closed. Our normal business hours are Monday through Friday, <prosody rate=\"95%\">9AM  to 5PM,</prosody> and  Saturday, <prosody rate=\"95%\">9AM to 1PM, </prosody>Eastern Standard time.  <break/>If you would like to use our automated phone system, press 1. Otherwise please call back during operating  hours. </prosody> </speak>"

	closedPromptDefault = " <speak>  <prosody pitch=\"medium\">Our office is  currently closed. Our normal business hours are Monday through Friday, <prosody rate=\"95%\">9AM  to 5PM,</prosody> and  Saturday, <prosody rate=\"95%\">9AM to 1PM, </prosody>Eastern Standard time.  <break/>Please call back on our next  business day.</prosody> </speak>"
)

// MainScope is the scope tag of the primary contact-center line.
const MainScope = "Main"

// ClosedPrompt returns the default closed-office prompt for a scope.
func ClosedPrompt(scope string) string {
	if scope == MainScope {
		return closedPromptMain
	}
	return closedPromptDefault
}
