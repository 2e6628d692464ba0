package services

import "lessonreserve/internal/domain"

// DefaultWeekScheduleRule returns the fixed weekly lesson recurrence,
// weekday offset 0 = Sunday. Some entries overlap in time across
// instructors; that is how the studio actually runs and the generator
// carries them through untouched.
func DefaultWeekScheduleRule() domain.WeekScheduleRule {
	return domain.WeekScheduleRule{
		// Sunday
		{
			{StartHour: 11, StartMinute: 45, EndHour: 13, EndMinute: 0, Title: "サンプル１", StyleTag: "sample1", Instructor: domain.InstructorUser1},
			{StartHour: 14, StartMinute: 0, EndHour: 14, EndMinute: 50, Title: "サンプル2", StyleTag: "sample2", Instructor: domain.InstructorUser1},
			{StartHour: 15, StartMinute: 0, EndHour: 15, EndMinute: 50, Title: "サンプル3", StyleTag: "sample3", Instructor: domain.InstructorUser1},
			{StartHour: 16, StartMinute: 0, EndHour: 16, EndMinute: 50, Title: "サンプル4", StyleTag: "sample4", Instructor: domain.InstructorUser1},
			{StartHour: 17, StartMinute: 0, EndHour: 18, EndMinute: 30, Title: "サンプル5", StyleTag: "sample2", Instructor: domain.InstructorUser1},
		},
		// Monday
		{
			{StartHour: 14, StartMinute: 0, EndHour: 15, EndMinute: 0, Title: "サンプル5", StyleTag: "sample2", Instructor: domain.InstructorUser2},
			{StartHour: 15, StartMinute: 0, EndHour: 15, EndMinute: 45, Title: "サンプル5", StyleTag: "sample2", Instructor: domain.InstructorUser1},
			{StartHour: 18, StartMinute: 30, EndHour: 20, EndMinute: 0, Title: "サンプル6", StyleTag: "color6", Instructor: domain.InstructorUser1},
			{StartHour: 20, StartMinute: 0, EndHour: 21, EndMinute: 30, Title: "サンプル5", StyleTag: "sample2", Instructor: domain.InstructorUser1},
			{StartHour: 22, StartMinute: 0, EndHour: 23, EndMinute: 0, Title: "サンプル7", StyleTag: "color7", Instructor: domain.InstructorUser2},
		},
		// Tuesday
		{
			{StartHour: 10, StartMinute: 0, EndHour: 13, EndMinute: 0, Title: "サンプル5", StyleTag: "sample2", Instructor: domain.InstructorUser2},
			{StartHour: 14, StartMinute: 0, EndHour: 16, EndMinute: 0, Title: "サンプル8", StyleTag: "color8", Instructor: domain.InstructorUser1},
			{StartHour: 17, StartMinute: 0, EndHour: 17, EndMinute: 50, Title: "サンプル4", StyleTag: "sample4", Instructor: domain.InstructorUser1},
			{StartHour: 18, StartMinute: 30, EndHour: 20, EndMinute: 0, Title: "サンプル5", StyleTag: "sample2", Instructor: domain.InstructorUser1},
			{StartHour: 20, StartMinute: 0, EndHour: 21, EndMinute: 30, Title: "サンプル9", StyleTag: "color9", Instructor: domain.InstructorUser1},
			{StartHour: 22, StartMinute: 0, EndHour: 23, EndMinute: 0, Title: "サンプル5", StyleTag: "sample2", Instructor: domain.InstructorUser2},
		},
		// Wednesday
		{
			{StartHour: 12, StartMinute: 0, EndHour: 12, EndMinute: 50, Title: "サンプル3", StyleTag: "sample3", Instructor: domain.InstructorUser1},
			{StartHour: 14, StartMinute: 0, EndHour: 15, EndMinute: 45, Title: "サンプル9", StyleTag: "color9", Instructor: domain.InstructorUser2},
			{StartHour: 18, StartMinute: 30, EndHour: 20, EndMinute: 0, Title: "サンプル5", StyleTag: "sample2", Instructor: domain.InstructorUser1},
			{StartHour: 20, StartMinute: 0, EndHour: 21, EndMinute: 30, Title: "サンプル5", StyleTag: "sample2", Instructor: domain.InstructorUser1},
			{StartHour: 22, StartMinute: 0, EndHour: 23, EndMinute: 0, Title: "サンプル7", StyleTag: "color7", Instructor: domain.InstructorUser2},
		},
		// Thursday
		{
			{StartHour: 10, StartMinute: 0, EndHour: 13, EndMinute: 0, Title: "サンプル5", StyleTag: "sample2", Instructor: domain.InstructorUser1},
			{StartHour: 14, StartMinute: 0, EndHour: 16, EndMinute: 0, Title: "サンプル8", StyleTag: "color8", Instructor: domain.InstructorUser2},
			{StartHour: 17, StartMinute: 0, EndHour: 17, EndMinute: 50, Title: "サンプル4", StyleTag: "sample4", Instructor: domain.InstructorUser1},
			{StartHour: 18, StartMinute: 30, EndHour: 20, EndMinute: 0, Title: "サンプル5", StyleTag: "sample2", Instructor: domain.InstructorUser1},
			{StartHour: 20, StartMinute: 0, EndHour: 21, EndMinute: 30, Title: "サンプル9", StyleTag: "color9", Instructor: domain.InstructorUser1},
			{StartHour: 22, StartMinute: 0, EndHour: 23, EndMinute: 0, Title: "サンプル5", StyleTag: "sample2", Instructor: domain.InstructorUser1},
		},
		// Friday
		{
			{StartHour: 12, StartMinute: 0, EndHour: 12, EndMinute: 50, Title: "サンプル3", StyleTag: "sample3", Instructor: domain.InstructorUser1},
			{StartHour: 14, StartMinute: 0, EndHour: 15, EndMinute: 0, Title: "サンプル5", StyleTag: "sample2", Instructor: domain.InstructorUser1},
			{StartHour: 15, StartMinute: 0, EndHour: 15, EndMinute: 45, Title: "サンプル5", StyleTag: "sample2", Instructor: domain.InstructorUser1},
			{StartHour: 18, StartMinute: 30, EndHour: 20, EndMinute: 0, Title: "サンプル5", StyleTag: "sample2", Instructor: domain.InstructorUser1},
			{StartHour: 20, StartMinute: 0, EndHour: 21, EndMinute: 30, Title: "グラップリング", StyleTag: "color10", Instructor: domain.InstructorUser1},
			{StartHour: 22, StartMinute: 0, EndHour: 23, EndMinute: 0, Title: "サンプル7", StyleTag: "color7", Instructor: domain.InstructorUser1},
		},
		// Saturday
		{
			{StartHour: 17, StartMinute: 0, EndHour: 18, EndMinute: 30, Title: "サンプル5", StyleTag: "sample2", Instructor: domain.InstructorUser1},
			{StartHour: 18, StartMinute: 30, EndHour: 20, EndMinute: 0, Title: "サンプル9", StyleTag: "color9", Instructor: domain.InstructorUser1},
			{StartHour: 20, StartMinute: 0, EndHour: 21, EndMinute: 30, Title: "サンプル2", StyleTag: "sample2", Instructor: domain.InstructorUser1},
		},
	}
}

// DefaultInstructorDirectory returns the instructor-to-address table used to
// CC instructors on staff notifications.
func DefaultInstructorDirectory() domain.InstructorDirectory {
	return domain.InstructorDirectory{
		domain.InstructorUser1: "user1@example.com",
		domain.InstructorUser2: "user2@example.com",
	}
}
