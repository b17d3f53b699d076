// Package services implements the Back2Me stores on top of a kv.Store.
//
// Each service owns one storage key and keeps a JSON document there:
//
//	back2me_users          AccountService
//	back2me_session        SessionService (durable and ephemeral scopes)
//	back2me_posts          ListingService
//	back2me_conversations  ConversationService
//	back2me_profile_pic_*  ProfileService
//
// Every mutation is a single read-modify-write run through Store.Atomically,
// so concurrent writers never lose each other's update. Failures of the
// underlying store, and documents that no longer decode, are reported as
// common.ErrorStorageUnavailable. Bad input is reported as a
// *validation.Errors, which matches common.ErrorValidation.
package services
