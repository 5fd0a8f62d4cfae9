// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/skilltrail/ent/progressrecord"
	"github.com/abhisek/skilltrail/ent/quizattempt"
	"github.com/abhisek/skilltrail/ent/schema"
	"github.com/abhisek/skilltrail/ent/studysession"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	progressrecordFields := schema.ProgressRecord{}.Fields()
	_ = progressrecordFields
	// progressrecordDescUserID is the schema descriptor for user_id field.
	progressrecordDescUserID := progressrecordFields[0].Descriptor()
	// progressrecord.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	progressrecord.UserIDValidator = progressrecordDescUserID.Validators[0].(func(string) error)
	// progressrecordDescSkillID is the schema descriptor for skill_id field.
	progressrecordDescSkillID := progressrecordFields[1].Descriptor()
	// progressrecord.SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	progressrecord.SkillIDValidator = progressrecordDescSkillID.Validators[0].(func(string) error)
	// progressrecordDescStatus is the schema descriptor for status field.
	progressrecordDescStatus := progressrecordFields[2].Descriptor()
	// progressrecord.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	progressrecord.StatusValidator = progressrecordDescStatus.Validators[0].(func(string) error)
	quizattemptMixin := schema.QuizAttempt{}.Mixin()
	quizattemptMixinFields0 := quizattemptMixin[0].Fields()
	_ = quizattemptMixinFields0
	quizattemptFields := schema.QuizAttempt{}.Fields()
	_ = quizattemptFields
	// quizattemptDescUserID is the schema descriptor for user_id field.
	quizattemptDescUserID := quizattemptMixinFields0[0].Descriptor()
	// quizattempt.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	quizattempt.UserIDValidator = quizattemptDescUserID.Validators[0].(func(string) error)
	// quizattemptDescSkillID is the schema descriptor for skill_id field.
	quizattemptDescSkillID := quizattemptMixinFields0[1].Descriptor()
	// quizattempt.SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	quizattempt.SkillIDValidator = quizattemptDescSkillID.Validators[0].(func(string) error)
	// quizattemptDescRecordedAt is the schema descriptor for recorded_at field.
	quizattemptDescRecordedAt := quizattemptMixinFields0[2].Descriptor()
	// quizattempt.DefaultRecordedAt holds the default value on creation for the recorded_at field.
	quizattempt.DefaultRecordedAt = quizattemptDescRecordedAt.Default.(func() time.Time)
	// quizattemptDescScore is the schema descriptor for score field.
	quizattemptDescScore := quizattemptFields[0].Descriptor()
	// quizattempt.ScoreValidator is a validator for the "score" field. It is called by the builders before save.
	quizattempt.ScoreValidator = func() func(int) error {
		validators := quizattemptDescScore.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(score int) error {
			for _, fn := range fns {
				if err := fn(score); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	studysessionMixin := schema.StudySession{}.Mixin()
	studysessionMixinFields0 := studysessionMixin[0].Fields()
	_ = studysessionMixinFields0
	studysessionFields := schema.StudySession{}.Fields()
	_ = studysessionFields
	// studysessionDescUserID is the schema descriptor for user_id field.
	studysessionDescUserID := studysessionMixinFields0[0].Descriptor()
	// studysession.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	studysession.UserIDValidator = studysessionDescUserID.Validators[0].(func(string) error)
	// studysessionDescSkillID is the schema descriptor for skill_id field.
	studysessionDescSkillID := studysessionMixinFields0[1].Descriptor()
	// studysession.SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	studysession.SkillIDValidator = studysessionDescSkillID.Validators[0].(func(string) error)
	// studysessionDescRecordedAt is the schema descriptor for recorded_at field.
	studysessionDescRecordedAt := studysessionMixinFields0[2].Descriptor()
	// studysession.DefaultRecordedAt holds the default value on creation for the recorded_at field.
	studysession.DefaultRecordedAt = studysessionDescRecordedAt.Default.(func() time.Time)
	// studysessionDescDurationSecs is the schema descriptor for duration_secs field.
	studysessionDescDurationSecs := studysessionFields[0].Descriptor()
	// studysession.DurationSecsValidator is a validator for the "duration_secs" field. It is called by the builders before save.
	studysession.DurationSecsValidator = studysessionDescDurationSecs.Validators[0].(func(int) error)
}
